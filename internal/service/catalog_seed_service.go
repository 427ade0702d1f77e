package service

import (
	"context"
	"fmt"
	"time"

	"medifind/internal/domain/repository"
	"medifind/pkg/apperror"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// Constants
// =============================================================================

// Upper bound for the whole startup migration.
const seedTimeout = 30 * time.Second

// =============================================================================
// Types
// =============================================================================

// CatalogSeedService runs the one-time catalog migration: seed the doctor
// and medicine catalogs into an empty store and backfill missing ids.
// Repositories repeat the same check on first access, so skipping this step
// only delays the work.
type CatalogSeedService struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	medicineRepo repository.MedicineRepository
}

// =============================================================================
// Constructor
// =============================================================================

func NewCatalogSeedService(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	medicineRepo repository.MedicineRepository,
) *CatalogSeedService {
	return &CatalogSeedService{
		log:          log,
		doctorRepo:   doctorRepo,
		medicineRepo: medicineRepo,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// SeedOnStartup migrates both catalogs concurrently. A catalog the backend
// refused to store is logged and kept in memory; only read failures are
// returned.
func (s *CatalogSeedService) SeedOnStartup(ctx context.Context) error {
	s.log.Info("Starting catalog migration...")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.migrate(gctx, "doctors", s.doctorRepo.Migrate)
	})
	g.Go(func() error {
		return s.migrate(gctx, "medicines", s.medicineRepo.Migrate)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.log.Infof("Catalog migration completed in %v", time.Since(startTime))
	return nil
}

// =============================================================================
// Private Helpers
// =============================================================================

func (s *CatalogSeedService) migrate(ctx context.Context, name string, fn func(context.Context) error) error {
	err := fn(ctx)
	switch {
	case err == nil:
		return nil
	case apperror.IsNotPersisted(err):
		s.log.Warnf("Catalog %s is held in memory only: %+v", name, err)
		return nil
	default:
		s.log.Errorf("Failed to migrate catalog %s: %+v", name, err)
		return fmt.Errorf("migrate %s: %w", name, err)
	}
}
