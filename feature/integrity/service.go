package integrity

import (
	"context"
	"fmt"

	"datamine/core/excel"
	"datamine/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report is the outcome of a full integrity run.
type Report struct {
	Version        string               `json:"version"`
	MissingFolders []string             `json:"missing_folders,omitempty"`
	Tables         []checks.TableStatus `json:"tables"`
	Checked        map[string]int       `json:"checked"`
	Findings       []checks.Finding     `json:"findings,omitempty"`
}

// OK reports whether the dataset passed. Absent tables do not fail a run.
func (r *Report) OK() bool {
	return len(r.MissingFolders) == 0 && len(r.Findings) == 0
}

// Service handles integrity checks.
type Service struct {
	store   *excel.Store
	walkers []checks.Walker
	logger  *zap.Logger
}

// NewService creates a new integrity service. With no walkers it uses DefaultWalkers.
func NewService(store *excel.Store, logger *zap.Logger, walkers ...checks.Walker) *Service {
	if len(walkers) == 0 {
		walkers = DefaultWalkers()
	}
	return &Service{
		store:   store,
		walkers: walkers,
		logger:  logger,
	}
}

// CheckStructure returns the required folders missing from the export.
func (s *Service) CheckStructure() []string {
	return checks.CheckStructure(s.store.FS())
}

// CheckTables returns the presence of every catalogued table.
func (s *Service) CheckTables() []checks.TableStatus {
	statuses := checks.CheckTables(s.store.FS(), s.store.Catalog())
	for _, name := range checks.Missing(statuses) {
		s.logger.Info("Table absent from export", zap.String("table", name))
	}
	return statuses
}

// CheckReferences walks every entity and collects unresolved references. It returns the
// number of entities checked per kind.
func (s *Service) CheckReferences(ctx context.Context) ([]checks.Finding, map[string]int, error) {
	var findings []checks.Finding
	checked := make(map[string]int, len(s.walkers))

	for _, w := range s.walkers {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		found, n, err := checks.CheckReferences(s.store, w)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range found {
			s.logger.Warn("Unresolved reference",
				zap.String("kind", f.Kind),
				zap.Uint32("id", f.ID),
				zap.String("field", f.Field),
				zap.String("key", f.Key),
				zap.String("error", f.Error),
			)
		}
		checked[w.Kind()] = n
		findings = append(findings, found...)
	}
	return findings, checked, nil
}

// Run loads every table and runs all checks. Malformed tables abort the run.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Version:        s.store.Version(),
		MissingFolders: s.CheckStructure(),
		Tables:         s.CheckTables(),
	}

	if err := s.store.Preload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}

	findings, checked, err := s.CheckReferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check references: %w", err)
	}
	report.Findings = findings
	report.Checked = checked

	s.logger.Info("Integrity check finished",
		zap.Bool("ok", report.OK()),
		zap.Int("findings", len(findings)),
		zap.Int("missing_tables", len(checks.Missing(report.Tables))),
	)
	return report, nil
}
