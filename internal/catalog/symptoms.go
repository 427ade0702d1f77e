// Package catalog holds the built-in reference data: the symptom taxonomy
// and the doctor and medicine records seeded into an empty store.
package catalog

import "medifind/internal/domain/entity"

// symptomIndex maps symptom ids to their records.
var symptomIndex = indexSymptoms(AllSymptoms())

func indexSymptoms(symptoms []entity.Symptom) map[string]entity.Symptom {
	index := make(map[string]entity.Symptom, len(symptoms))
	for _, s := range symptoms {
		index[s.ID] = s
	}
	return index
}

// Categories returns the symptom categories in display order.
func Categories() []entity.SymptomCategory {
	out := make([]entity.SymptomCategory, len(symptomCategories))
	for i, c := range symptomCategories {
		out[i] = entity.SymptomCategory{Key: c.Key, Symptoms: cloneSymptoms(c.Symptoms)}
	}
	return out
}

// AllSymptoms flattens every category, keeping category order.
func AllSymptoms() []entity.Symptom {
	var out []entity.Symptom
	for _, c := range symptomCategories {
		out = append(out, cloneSymptoms(c.Symptoms)...)
	}
	return out
}

// FindSymptom looks up a symptom by id.
func FindSymptom(id string) (entity.Symptom, bool) {
	s, ok := symptomIndex[id]
	if !ok {
		return entity.Symptom{}, false
	}
	return cloneSymptom(s), true
}

// SpecialtiesFor returns the union of the specialties related to the given
// symptom ids, in first-encounter order. Unknown ids are ignored.
func SpecialtiesFor(ids []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, id := range ids {
		s, ok := symptomIndex[id]
		if !ok {
			continue
		}
		for _, spec := range s.RelatedSpecialties {
			if _, dup := seen[spec]; dup {
				continue
			}
			seen[spec] = struct{}{}
			out = append(out, spec)
		}
	}
	return out
}

func cloneSymptoms(in []entity.Symptom) []entity.Symptom {
	out := make([]entity.Symptom, len(in))
	for i, s := range in {
		out[i] = cloneSymptom(s)
	}
	return out
}

func cloneSymptom(s entity.Symptom) entity.Symptom {
	s.RelatedSpecialties = append([]string(nil), s.RelatedSpecialties...)
	return s
}
