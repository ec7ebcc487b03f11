package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/migration"
	"github.com/yukikurage/portfolio-dashboard-api/internal/seed"
)

// MigrationService feeds the configured seed dataset into the migrator
type MigrationService struct {
	migrator   *migration.Migrator
	seedFile   string
	randomSeed uint64
	now        func() time.Time
}

// NewMigrationService creates a new MigrationService. An empty seedFile selects the embedded dataset.
func NewMigrationService(migrator *migration.Migrator, seedFile string, randomSeed uint64) *MigrationService {
	return &MigrationService{
		migrator:   migrator,
		seedFile:   seedFile,
		randomSeed: randomSeed,
		now:        time.Now,
	}
}

// Run loads the dataset, expands generated units and migrates every project.
// The returned error covers loading only; per-project failures are in the result.
func (s *MigrationService) Run(ctx context.Context) (*migration.Result, error) {
	dataset, err := s.loadDataset()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(s.randomSeed, s.randomSeed))
	dataset.ExpandUnits(rng, s.now())

	return s.migrator.Run(ctx, dataset), nil
}

func (s *MigrationService) loadDataset() (*seed.Dataset, error) {
	if s.seedFile == "" {
		dataset, err := seed.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded seed dataset: %w", err)
		}
		return dataset, nil
	}
	return seed.Load(s.seedFile)
}
