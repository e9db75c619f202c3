package requests

type CreateAppointment struct {
	PatientID string `json:"patient_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Reason    string `json:"reason" validate:"max=500"`
}
