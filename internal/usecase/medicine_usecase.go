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
	"medifind/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrPharmacyNotFound = errors.New("pharmacy not found for medicine")
)

type MedicineUsecase interface {
	GetMedicines(ctx context.Context, filter *dto.MedicineFilterRequest) (*dto.MedicineListResponse, error)
	GetMedicine(ctx context.Context, id string) (*dto.MedicineResponse, error)
	GetCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	UpdateStock(ctx context.Context, medicineID, pharmacyID string, req *dto.UpdateStockRequest) (*dto.UpdateStockResponse, error)
}

type medicineUsecase struct {
	log          *logrus.Logger
	validator    *validator.CustomValidator
	medicineRepo repository.MedicineRepository
}

func NewMedicineUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	medicineRepo repository.MedicineRepository,
) MedicineUsecase {
	return &medicineUsecase{
		log:          log,
		validator:    validator,
		medicineRepo: medicineRepo,
	}
}

func (u *medicineUsecase) GetMedicines(ctx context.Context, filter *dto.MedicineFilterRequest) (*dto.MedicineListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}

	if filter != nil {
		medicines = filterMedicines(medicines, entity.MedicineFilter{Search: filter.Search, Category: filter.Category})
	}

	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     len(medicines),
	}, nil
}

func (u *medicineUsecase) GetMedicine(ctx context.Context, id string) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine %s: %+v", id, err)
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("medicine", id, ErrMedicineNotFound)
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	medicines, err := u.medicineRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find medicines: %+v", err)
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, m := range medicines {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		categories = append(categories, m.Category)
	}
	sort.Strings(categories)

	return &dto.CategoryListResponse{Categories: categories}, nil
}

// UpdateStock sets the stock of one pharmacy entry. The new value is
// validated before anything is looked up or written.
func (u *medicineUsecase) UpdateStock(ctx context.Context, medicineID, pharmacyID string, req *dto.UpdateStockRequest) (*dto.UpdateStockResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}
	stock := *req.Stock

	updated, err := u.medicineRepo.Update(ctx, medicineID, func(m *entity.Medicine) error {
		avail := m.FindAvailability(pharmacyID)
		if avail == nil {
			return apperror.NewNotFoundError("pharmacy", pharmacyID, ErrPharmacyNotFound)
		}
		avail.Stock = stock
		return nil
	})

	persisted := true
	if err != nil {
		if !apperror.IsNotPersisted(err) {
			if !apperror.IsNotFound(err) {
				u.log.Warnf("Failed to update stock for medicine %s: %+v", medicineID, err)
			}
			return nil, err
		}
		persisted = false
	}
	if updated == nil {
		return nil, apperror.NewNotFoundError("medicine", medicineID, ErrMedicineNotFound)
	}

	u.log.Infof("Stock updated: medicine=%s, pharmacy=%s, stock=%d", medicineID, pharmacyID, stock)
	return &dto.UpdateStockResponse{
		Medicine:  converter.MedicineToResponse(updated),
		Persisted: persisted,
	}, nil
}

// filterMedicines matches the search term case-insensitively against name,
// description and any pharmacy location, and the category exactly.
func filterMedicines(medicines []entity.Medicine, filter entity.MedicineFilter) []entity.Medicine {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []entity.Medicine{}
	for _, m := range medicines {
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if term != "" && !medicineMatches(m, term) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func medicineMatches(m entity.Medicine, term string) bool {
	if strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Description), term) {
		return true
	}
	for _, a := range m.Availability {
		if strings.Contains(strings.ToLower(a.Location), term) {
			return true
		}
	}
	return false
}
