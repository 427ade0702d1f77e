package usecase

import (
	"context"
	"sort"

	"medifind/internal/catalog"
	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// MaxRecommendedDoctors caps the recommendation list.
const MaxRecommendedDoctors = 10

type RecommendationUsecase interface {
	GetSymptomCatalog() *dto.SymptomCatalogResponse
	GetSpecialtiesForSymptoms(ids []string) []string
	RecommendDoctors(ctx context.Context, ids []string) (*dto.RecommendationResponse, error)
}

type recommendationUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	ratings    *ratingOverlay
}

func NewRecommendationUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	reviewRepo repository.ReviewRepository,
) RecommendationUsecase {
	return &recommendationUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		ratings:    &ratingOverlay{log: log, reviewRepo: reviewRepo},
	}
}

func (u *recommendationUsecase) GetSymptomCatalog() *dto.SymptomCatalogResponse {
	return converter.SymptomCategoriesToResponse(catalog.Categories())
}

func (u *recommendationUsecase) GetSpecialtiesForSymptoms(ids []string) []string {
	return catalog.SpecialtiesFor(ids)
}

// RecommendDoctors resolves the selected symptoms to specialties and returns
// the best rated matching doctors. With no specialty to go on it falls back
// to general physicians.
func (u *recommendationUsecase) RecommendDoctors(ctx context.Context, ids []string) (*dto.RecommendationResponse, error) {
	specialties := catalog.SpecialtiesFor(ids)

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	shown, err := u.ratings.applyAll(ctx, doctors)
	if err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []string{}
	}
	return &dto.RecommendationResponse{
		SymptomIDs:  ids,
		Specialties: specialties,
		Doctors:     converter.DoctorsToResponses(matchDoctors(shown, specialties)),
	}, nil
}

// matchDoctors keeps doctors in the given specialties, sorts them by
// displayed rating with ties left in catalog order, and truncates.
func matchDoctors(doctors []entity.Doctor, specialties []string) []entity.Doctor {
	wanted := make(map[string]struct{}, len(specialties))
	for _, s := range specialties {
		wanted[s] = struct{}{}
	}
	if len(wanted) == 0 {
		wanted[entity.SpecialtyGeneralPhysician] = struct{}{}
	}

	matched := []entity.Doctor{}
	for _, d := range doctors {
		if _, ok := wanted[d.Specialty]; ok {
			matched = append(matched, d)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	if len(matched) > MaxRecommendedDoctors {
		matched = matched[:MaxRecommendedDoctors]
	}
	return matched
}
