package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		DoctorID:       appointment.DoctorID,
		DoctorName:     appointment.DoctorName,
		Date:           appointment.Date,
		Time:           appointment.Time,
		PatientName:    appointment.PatientName,
		PatientContact: appointment.PatientContact,
		Status:         string(appointment.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
