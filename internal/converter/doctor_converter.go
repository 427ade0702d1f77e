package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Specialty:         doctor.Specialty,
		Rating:            doctor.Rating,
		Reviews:           doctor.Reviews,
		Location:          doctor.Location,
		Image:             doctor.Image,
		Available:         doctor.Available,
		Phone:             doctor.Phone,
		Email:             doctor.Email,
		Bio:               doctor.Bio,
		Qualifications:    nonNil(doctor.Qualifications),
		WorkingHours:      doctor.WorkingHours,
		Services:          nonNil(doctor.Services),
		InsuranceAccepted: nonNil(doctor.InsuranceAccepted),
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
