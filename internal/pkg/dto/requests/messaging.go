package requests

type CreateThread struct {
	Subject   string `json:"subject" validate:"required"`
	PatientID string `json:"patient_id"`
}

type SendMessage struct {
	Body string `json:"body" validate:"required"`
}
