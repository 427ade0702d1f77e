package dto

type SymptomResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	RelatedSpecialties []string `json:"related_specialties"`
}

type SymptomCategoryResponse struct {
	Key      string            `json:"key"`
	Symptoms []SymptomResponse `json:"symptoms"`
}

type SymptomCatalogResponse struct {
	Categories []SymptomCategoryResponse `json:"categories"`
	Total      int                       `json:"total"`
}

type RecommendationResponse struct {
	SymptomIDs  []string         `json:"symptom_ids"`
	Specialties []string         `json:"specialties"`
	Doctors     []DoctorResponse `json:"doctors"`
}
