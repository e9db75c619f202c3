package responses

type DashboardStats struct {
	PatientCount     int64 `json:"patient_count"`
	AppointmentCount int64 `json:"appointment_count"`
}
