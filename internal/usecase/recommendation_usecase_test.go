package usecase

import (
	"context"
	"testing"
	"time"

	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorIDs(doctors []dto.DoctorResponse) []string {
	ids := make([]string, len(doctors))
	for i, d := range doctors {
		ids[i] = d.ID
	}
	return ids
}

func TestRecommendationUsecase_NoSymptomsFallsBackToGeneralPhysicians(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewRecommendationUsecase(deps.log, deps.doctorRepo, deps.reviewRepo)

	resp, err := uc.RecommendDoctors(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Specialties)
	require.NotEmpty(t, resp.Doctors)
	for _, d := range resp.Doctors {
		assert.Equal(t, entity.SpecialtyGeneralPhysician, d.Specialty)
	}
	assert.LessOrEqual(t, len(resp.Doctors), MaxRecommendedDoctors)
}

func TestRecommendationUsecase_ChestPain(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewRecommendationUsecase(deps.log, deps.doctorRepo, deps.reviewRepo)

	specialties := uc.GetSpecialtiesForSymptoms([]string{"s_chest_pain"})
	assert.ElementsMatch(t, []string{"Cardiologist", "General Physician"}, specialties)

	resp, err := uc.RecommendDoctors(context.Background(), []string{"s_chest_pain"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc_k_001", "doc_k_011"}, doctorIDs(resp.Doctors))
}

func TestRecommendationUsecase_UsesDisplayedRating(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewRecommendationUsecase(deps.log, deps.doctorRepo, deps.reviewRepo)
	reviews := newReviewUsecase(deps, time.Now())
	ctx := context.Background()

	resp, err := uc.RecommendDoctors(ctx, []string{"s_fever", "s_cough"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc_k_002", "doc_k_011", "doc_k_012"}, doctorIDs(resp.Doctors))

	_, err = reviews.CreateReview(ctx, "doc_k_002", &dto.CreateReviewRequest{ReviewerName: "Ravi", Rating: 2, Comment: "Long wait"})
	require.NoError(t, err)

	resp, err = uc.RecommendDoctors(ctx, []string{"s_fever", "s_cough"})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc_k_011", "doc_k_012", "doc_k_002"}, doctorIDs(resp.Doctors))
}

func TestMatchDoctors_StableAndTruncated(t *testing.T) {
	var doctors []entity.Doctor
	for i := 0; i < 12; i++ {
		doctors = append(doctors, entity.Doctor{ID: string(rune('a' + i)), Specialty: "Dentist", Rating: 4.5})
	}
	doctors = append(doctors, entity.Doctor{ID: "top", Specialty: "Dentist", Rating: 4.9})
	doctors = append(doctors, entity.Doctor{ID: "other", Specialty: "Urologist", Rating: 5.0})

	got := matchDoctors(doctors, []string{"Dentist"})
	require.Len(t, got, MaxRecommendedDoctors)
	assert.Equal(t, "top", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "b", got[2].ID)
	assert.Equal(t, "i", got[9].ID)
}

func TestRecommendationUsecase_SymptomCatalog(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewRecommendationUsecase(deps.log, deps.doctorRepo, deps.reviewRepo)

	catalog := uc.GetSymptomCatalog()
	assert.Equal(t, 62, catalog.Total)
	assert.Equal(t, "common", catalog.Categories[0].Key)
}
