package utils

import (
	"strings"

	"clinicore-service/internal/pkg/dto/requests"
)

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Dob = strings.TrimSpace(request.Dob)
}

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointment) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.Date = strings.TrimSpace(request.Date)
	request.Time = strings.TrimSpace(request.Time)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeCreateInvoiceRequest(request *requests.CreateInvoice) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.Number = strings.TrimSpace(request.Number)
	for i := range request.Items {
		request.Items[i].Name = strings.TrimSpace(request.Items[i].Name)
	}
}

func SanitizeCreateThreadRequest(request *requests.CreateThread) {
	request.Subject = strings.TrimSpace(request.Subject)
	request.PatientID = strings.TrimSpace(request.PatientID)
}

func SanitizeRegisterRequest(request *requests.Register) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}
