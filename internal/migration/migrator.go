package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/metrics"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"github.com/yukikurage/portfolio-dashboard-api/internal/seed"
	"go.uber.org/zap"
)

// Outcome of migrating one seed project.
type Outcome string

const (
	OutcomeMigrated    Outcome = "migrated"
	OutcomeUnitsFailed Outcome = "units_failed"
	OutcomeFailed      Outcome = "failed"
)

// Item is the result for one seed project.
type Item struct {
	ProjectID string  `json:"project_id"`
	Title     string  `json:"title"`
	Outcome   Outcome `json:"outcome"`
	Units     int     `json:"units"`
	Error     string  `json:"error,omitempty"`

	err error
}

// Result lists one item per seed project, in dataset order.
type Result struct {
	Items []Item `json:"items"`
}

// Succeeded counts projects whose row and units were both written.
func (r *Result) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Outcome == OutcomeMigrated {
			n++
		}
	}
	return n
}

// Failed counts projects that were not fully migrated.
func (r *Result) Failed() int {
	return len(r.Items) - r.Succeeded()
}

// Err returns the first failure, or nil when every project migrated.
func (r *Result) Err() error {
	for _, item := range r.Items {
		if item.err != nil {
			return fmt.Errorf("project %s: %w", item.ProjectID, item.err)
		}
	}
	return nil
}

// Migrator upserts seed projects and their units one project at a time.
// A failing project is logged and recorded, and the batch continues.
type Migrator struct {
	projects repository.ProjectRepository
	units    repository.UnitRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewMigrator(projects repository.ProjectRepository, units repository.UnitRepository, log *zap.Logger) *Migrator {
	return &Migrator{
		projects: projects,
		units:    units,
		log:      log,
		now:      time.Now,
	}
}

// Run migrates the dataset. Units must already be expanded on the dataset.
func (m *Migrator) Run(ctx context.Context, dataset *seed.Dataset) *Result {
	result := &Result{Items: make([]Item, 0, len(dataset.Projects))}

	for _, p := range dataset.Projects {
		if err := ctx.Err(); err != nil {
			result.Items = append(result.Items, m.fail(Item{ProjectID: p.ID, Title: p.Name}, OutcomeFailed, err))
			continue
		}
		result.Items = append(result.Items, m.migrateProject(p))
	}

	m.log.Info("seed migration finished",
		zap.Int("projects", len(result.Items)),
		zap.Int("succeeded", result.Succeeded()),
		zap.Int("failed", result.Failed()),
	)
	return result
}

func (m *Migrator) migrateProject(p seed.Project) Item {
	item := Item{ProjectID: p.ID, Title: p.Name}

	project := ToProject(p)
	if err := portfolio.ValidateProject(&project); err != nil {
		return m.fail(item, OutcomeFailed, err)
	}
	if err := m.projects.Upsert(&project); err != nil {
		return m.fail(item, OutcomeFailed, fmt.Errorf("failed to upsert project: %w", err))
	}

	units := ToUnits(p, m.now())
	for i := range units {
		if err := portfolio.ValidateUnit(&units[i]); err != nil {
			return m.fail(item, OutcomeUnitsFailed, fmt.Errorf("unit %s: %w", units[i].ID, err))
		}
	}
	if err := m.units.UpsertBatch(units); err != nil {
		return m.fail(item, OutcomeUnitsFailed, fmt.Errorf("failed to upsert units: %w", err))
	}

	item.Outcome = OutcomeMigrated
	item.Units = len(units)
	metrics.IncrementMigrationItem(string(OutcomeMigrated))
	m.log.Info("migrated project", zap.String("project_id", p.ID), zap.Int("units", len(units)))
	return item
}

func (m *Migrator) fail(item Item, outcome Outcome, err error) Item {
	item.Outcome = outcome
	item.Error = err.Error()
	item.err = err
	metrics.IncrementMigrationItem(string(outcome))
	m.log.Error("failed to migrate project",
		zap.String("project_id", item.ProjectID),
		zap.String("outcome", string(outcome)),
		zap.Error(err),
	)
	return item
}
