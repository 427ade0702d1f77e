package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity and fills in the derived
// stock fields.
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	availability := make([]dto.AvailabilityResponse, len(medicine.Availability))
	for i := range medicine.Availability {
		availability[i] = *AvailabilityToResponse(&medicine.Availability[i])
	}

	return &dto.MedicineResponse{
		ID:                medicine.ID,
		Name:              medicine.Name,
		Category:          medicine.Category,
		Image:             medicine.Image,
		Description:       medicine.Description,
		Manufacturer:      medicine.Manufacturer,
		Dosage:            medicine.Dosage,
		SideEffects:       medicine.SideEffects,
		Storage:           medicine.Storage,
		Availability:      availability,
		TotalStock:        medicine.TotalStock(),
		InStockPharmacies: medicine.InStockPharmacies(),
		NearestAvailable:  AvailabilityToResponse(medicine.NearestAvailable()),
	}
}

func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

func AvailabilityToResponse(a *entity.Availability) *dto.AvailabilityResponse {
	if a == nil {
		return nil
	}

	resp := &dto.AvailabilityResponse{
		PharmacyID:   a.PharmacyID,
		PharmacyName: a.PharmacyName,
		Stock:        a.Stock,
		Location:     a.Location,
		Distance:     a.Distance,
		Phone:        a.Phone,
		Email:        a.Email,
	}
	if a.Coordinates != nil {
		resp.Coordinates = &dto.CoordinatesResponse{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}
	return resp
}
