package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	GetDoctors(ctx context.Context, filter *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	ratings    *ratingOverlay
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	reviewRepo repository.ReviewRepository,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		ratings:    &ratingOverlay{log: log, reviewRepo: reviewRepo},
	}
}

// GetDoctors returns the directory in catalog order with displayed ratings.
// A nil or empty filter lists everything.
func (u *doctorUsecase) GetDoctors(ctx context.Context, filter *dto.DoctorFilterRequest) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	if filter != nil {
		doctors = filterDoctors(doctors, entity.DoctorFilter{Search: filter.Search, Specialty: filter.Specialty})
	}

	shown, err := u.ratings.applyAll(ctx, doctors)
	if err != nil {
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(shown),
		Total:   len(shown),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("doctor", id, ErrDoctorNotFound)
	}

	shown, err := u.ratings.apply(ctx, *doctor)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(&shown), nil
}

// GetSpecialties lists the distinct specialties in the directory, sorted.
func (u *doctorUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	seen := make(map[string]struct{})
	specialties := []string{}
	for _, d := range doctors {
		if _, ok := seen[d.Specialty]; ok {
			continue
		}
		seen[d.Specialty] = struct{}{}
		specialties = append(specialties, d.Specialty)
	}
	sort.Strings(specialties)

	return &dto.SpecialtyListResponse{Specialties: specialties}, nil
}

// filterDoctors matches the search term case-insensitively against name,
// bio and location, and the specialty exactly.
func filterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []entity.Doctor{}
	for _, d := range doctors {
		if filter.Specialty != "" && d.Specialty != filter.Specialty {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(d.Name), term) &&
			!strings.Contains(strings.ToLower(d.Bio), term) &&
			!strings.Contains(strings.ToLower(d.Location), term) {
			continue
		}
		out = append(out, d)
	}
	return out
}
