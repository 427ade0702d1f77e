package usecase

import (
	"context"
	"testing"

	"medifind/internal/delivery/dto"
	"medifind/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineUsecase_GetMedicines(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	first, err := uc.GetMedicines(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 10, first.Total)

	crocin := first.Medicines[0]
	assert.Equal(t, 115, crocin.TotalStock)
	assert.Equal(t, 2, crocin.InStockPharmacies)
	require.NotNil(t, crocin.NearestAvailable)
	assert.Equal(t, "ph_k_001_1", crocin.NearestAvailable.PharmacyID)

	second, err := uc.GetMedicines(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMedicineUsecase_Filter(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	byLocation, err := uc.GetMedicines(ctx, &dto.MedicineFilterRequest{Search: "Hubli"})
	require.NoError(t, err)
	require.Equal(t, 1, byLocation.Total)
	assert.Equal(t, "med_k_002", byLocation.Medicines[0].ID)

	byCategory, err := uc.GetMedicines(ctx, &dto.MedicineFilterRequest{Category: "Pain Relief"})
	require.NoError(t, err)
	assert.Equal(t, 2, byCategory.Total)

	categories, err := uc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Acid Reflux", "Allergy Relief", "Antacid", "Antibiotic", "Asthma Relief",
		"Cold & Flu", "Cough Relief", "Pain Relief", "Topical Pain Relief",
	}, categories.Categories)
}

func TestMedicineUsecase_GetMedicineNotFound(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)

	_, err := uc.GetMedicine(context.Background(), "med_missing")
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestMedicineUsecase_UpdateStock(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	resp, err := uc.UpdateStock(ctx, "med_k_001", "ph_k_001_1", &dto.UpdateStockRequest{Stock: intPtr(0)})
	require.NoError(t, err)
	assert.True(t, resp.Persisted)
	assert.Equal(t, 40, resp.Medicine.TotalStock)
	assert.Equal(t, 1, resp.Medicine.InStockPharmacies)
	assert.Equal(t, "ph_k_001_2", resp.Medicine.NearestAvailable.PharmacyID)

	got, err := uc.GetMedicine(ctx, "med_k_001")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Availability[0].Stock)
	assert.Equal(t, 40, got.Availability[1].Stock)
}

func TestMedicineUsecase_UpdateStockRejectsNegative(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, "med_k_001", "ph_k_001_1", &dto.UpdateStockRequest{Stock: intPtr(-1)})
	assert.True(t, apperror.IsValidation(err))

	_, err = uc.UpdateStock(ctx, "med_k_001", "ph_k_001_1", &dto.UpdateStockRequest{})
	assert.True(t, apperror.IsValidation(err))

	got, err := uc.GetMedicine(ctx, "med_k_001")
	require.NoError(t, err)
	assert.Equal(t, 75, got.Availability[0].Stock)
}

func TestMedicineUsecase_UpdateStockNotFound(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, "med_missing", "ph_k_001_1", &dto.UpdateStockRequest{Stock: intPtr(5)})
	assert.True(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, ErrMedicineNotFound)

	_, err = uc.UpdateStock(ctx, "med_k_001", "ph_missing", &dto.UpdateStockRequest{Stock: intPtr(5)})
	assert.True(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, ErrPharmacyNotFound)
}

func TestMedicineUsecase_UpdateStockNotPersisted(t *testing.T) {
	deps := newTestDeps(t)
	uc := NewMedicineUsecase(deps.log, deps.validator, deps.medicineRepo)
	ctx := context.Background()

	require.NoError(t, deps.medicineRepo.Migrate(ctx))
	deps.backend.failWrites.Store(true)

	resp, err := uc.UpdateStock(ctx, "med_k_002", "ph_k_002_2", &dto.UpdateStockRequest{Stock: intPtr(7)})
	require.NoError(t, err)
	assert.False(t, resp.Persisted)

	got, err := uc.GetMedicine(ctx, "med_k_002")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Availability[1].Stock)
}
