package entity

type Symptom struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	RelatedSpecialties []string `json:"relatedSpecialties"`
}

type SymptomCategory struct {
	Key      string    `json:"key"`
	Symptoms []Symptom `json:"symptoms"`
}
