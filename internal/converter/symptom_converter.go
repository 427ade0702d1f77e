package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

func SymptomCategoriesToResponse(categories []entity.SymptomCategory) *dto.SymptomCatalogResponse {
	resp := &dto.SymptomCatalogResponse{
		Categories: make([]dto.SymptomCategoryResponse, len(categories)),
	}
	for i, c := range categories {
		symptoms := make([]dto.SymptomResponse, len(c.Symptoms))
		for j, s := range c.Symptoms {
			symptoms[j] = dto.SymptomResponse{ID: s.ID, Name: s.Name, RelatedSpecialties: s.RelatedSpecialties}
		}
		resp.Categories[i] = dto.SymptomCategoryResponse{Key: c.Key, Symptoms: symptoms}
		resp.Total += len(symptoms)
	}
	return resp
}
