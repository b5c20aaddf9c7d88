package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"datamine/core/allowlist"
	"datamine/core/config"
	"datamine/core/excel"
	"datamine/core/logger"
	"datamine/core/storage"
	"datamine/core/textmap"

	"go.uber.org/zap"
)

// session is what every command needs: config, a run-scoped logger and the store.
type session struct {
	cfg    *config.Config
	runID  string
	logger *zap.Logger
	store  *excel.Store
}

func openSession() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if baseFlag != "" {
		cfg.Storage.BaseDir = baseFlag
	}
	if versionFlag != "" {
		cfg.Excel.Version = versionFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	runID := logger.NewRunID()
	logg = logger.WithRunID(logg, runID)

	fs, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	text, err := textmap.Load(fs, cfg.Text, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to load text map: %w", err)
	}

	store := excel.NewStore(excel.Options{
		FS:     fs,
		Text:   text,
		Allow:  allowlist.Known,
		Logger: logg,
		Config: cfg.Excel,
	})

	logg.Debug("Dataset opened",
		zap.String("base", cfg.Storage.BaseDir),
		zap.String("version", cfg.Excel.Version),
		zap.String("text", text.File()),
		zap.Int("strings", text.Len()),
	)

	return &session{cfg: cfg, runID: runID, logger: logg, store: store}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
