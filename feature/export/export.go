package export

import (
	"context"
	"fmt"
	"time"

	"datamine/core/database"
	"datamine/core/excel"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options configures an export.
type Options struct {
	// RunID identifies the run in export_runs. A random id is used when empty.
	RunID string
	// BatchSize bounds the rows per INSERT. Defaults to 200.
	BatchSize int
}

// TableSummary describes one written table.
type TableSummary struct {
	Table   string   `json:"table"`
	Rows    int64    `json:"rows"`
	Columns []string `json:"columns"`
}

// Summary describes a finished export.
type Summary struct {
	RunID  string         `json:"run_id"`
	Tables []TableSummary `json:"tables"`
}

// recordSet is one table's worth of records.
type recordSet struct {
	model any
	table string
	rows  any
	n     int
}

func newSet[T interface{ TableName() string }](rows []T) recordSet {
	var zero T
	return recordSet{model: &zero, table: zero.TableName(), rows: &rows, n: len(rows)}
}

// Service writes snapshots of a store.
type Service struct {
	db     *gorm.DB
	store  *excel.Store
	logger *zap.Logger
}

// NewService creates a new export service.
func NewService(db *gorm.DB, store *excel.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, store: store, logger: logger}
}

// Export builds every record kind and replaces the snapshot tables in one transaction.
// Dangling references and broken tables abort the export before anything is written.
func (s *Service) Export(ctx context.Context, opts Options) (summary *Summary, err error) {
	defer excel.Recover(&err)

	if opts.BatchSize <= 0 {
		opts.BatchSize = 200
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	start := time.Now()
	sets := []recordSet{
		newSet(BuildAvatars(s.store)),
		newSet(BuildEquipment(s.store)),
		newSet(BuildItems(s.store)),
		newSet(BuildMissions(s.store)),
		newSet(BuildFloors(s.store)),
		newSet(BuildMonsters(s.store)),
	}
	s.logger.Debug("Built export records", zap.Duration("elapsed", time.Since(start)))

	total := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, set := range sets {
			if err := tx.AutoMigrate(set.model); err != nil {
				return fmt.Errorf("failed to migrate %s: %w", set.table, err)
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(set.model).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", set.table, err)
			}
			if set.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(set.rows, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("failed to write %s: %w", set.table, err)
			}
			total += set.n
		}

		if err := tx.AutoMigrate(&RunRecord{}); err != nil {
			return fmt.Errorf("failed to migrate export_runs: %w", err)
		}
		run := RunRecord{RunID: opts.RunID, Version: s.store.Version(), Records: total, CreatedAt: time.Now().UTC()}
		if err := tx.Create(&run).Error; err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary = &Summary{RunID: opts.RunID}
	for _, set := range sets {
		ts, err := describe(s.db.WithContext(ctx), set.table)
		if err != nil {
			return nil, err
		}
		summary.Tables = append(summary.Tables, ts)
	}

	s.logger.Info("Export finished",
		zap.Int("records", total),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

func describe(db *gorm.DB, table string) (TableSummary, error) {
	columns, err := database.GetTableColumns(db, table)
	if err != nil {
		return TableSummary{}, err
	}
	rows, err := database.CountRows(db, table)
	if err != nil {
		return TableSummary{}, err
	}

	ts := TableSummary{Table: table, Rows: rows}
	for _, c := range columns {
		ts.Columns = append(ts.Columns, c.Field)
	}
	return ts, nil
}
