package utils

import (
	"time"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/dto/responses"
)

func MapPatientToResponse(patient *models.Patient) responses.Patient {
	dob := ""
	if patient.Dob != nil {
		dob = patient.Dob.Format(constvars.PatientDobLayout)
	}
	return responses.Patient{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DisplayName: patient.DisplayName(),
		Dob:         dob,
		Phone:       patient.Phone,
		Email:       patient.Email,
		CreatedAt:   patient.CreatedAt.Format(time.RFC3339),
	}
}

func MapInvoiceToResponse(invoice *models.Invoice, patient *models.Patient) responses.Invoice {
	items := make([]responses.InvoiceLineItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, responses.InvoiceLineItem{
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: FormatMoney(item.UnitPrice),
			Total:     FormatMoney(item.Total),
		})
	}

	response := responses.Invoice{
		ID:       invoice.ID,
		Number:   invoice.Number,
		Items:    items,
		Subtotal: FormatMoney(invoice.Subtotal),
		Tax:      FormatMoney(invoice.Tax),
		Total:    FormatMoney(invoice.Total),
		Status:   string(invoice.Status),
		IssuedAt: invoice.IssuedAt.Format(time.RFC3339),
	}
	if invoice.PaidAt != nil {
		response.PaidAt = invoice.PaidAt.Format(time.RFC3339)
	}
	if patient != nil {
		patientResponse := MapPatientToResponse(patient)
		response.Patient = &patientResponse
	}
	return response
}

func MapAppointmentToResponse(appointment *models.Appointment, patient *models.Patient) responses.Appointment {
	response := responses.Appointment{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		StartsAt:  appointment.StartsAt.Format(time.RFC3339),
		Reason:    appointment.Reason,
		Status:    string(appointment.Status),
	}
	if patient != nil {
		patientResponse := MapPatientToResponse(patient)
		response.Patient = &patientResponse
	}
	return response
}

func MapThreadToResponse(thread *models.MessageThread, patient *models.Patient) responses.Thread {
	response := responses.Thread{
		ID:            thread.ID,
		Subject:       thread.Subject,
		Participants:  thread.Participants,
		LastMessageAt: thread.LastMessageAt.Format(time.RFC3339),
	}
	if patient != nil {
		patientResponse := MapPatientToResponse(patient)
		response.Patient = &patientResponse
	}
	return response
}

func MapMessageToResponse(message *models.Message) responses.Message {
	return responses.Message{
		ID:       message.ID,
		ThreadID: message.ThreadID,
		SenderID: message.SenderID,
		Body:     message.Body,
		SentAt:   message.SentAt.Format(time.RFC3339),
	}
}
