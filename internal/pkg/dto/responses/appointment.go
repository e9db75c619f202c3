package responses

type Appointment struct {
	ID        string   `json:"id"`
	Patient   *Patient `json:"patient,omitempty"`
	PatientID string   `json:"patient_id"`
	StartsAt  string   `json:"starts_at"`
	Reason    string   `json:"reason,omitempty"`
	Status    string   `json:"status"`
}
