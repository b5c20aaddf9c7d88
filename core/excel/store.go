package excel

import (
	"context"
	"errors"
	"os"
	"sort"
	"sync"

	"datamine/core/allowlist"
	"datamine/core/lazy"
	"datamine/core/storage"
	"datamine/core/textmap"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadStat describes how one table was loaded.
type LoadStat struct {
	Table    string   `json:"table"`
	File     string   `json:"file,omitempty"`
	Encoding Encoding `json:"encoding"`
	Rows     int      `json:"rows"`
}

// Options configures a Store.
type Options struct {
	// FS is the dataset filesystem (see core/storage).
	FS billy.Filesystem
	// Text resolves text hashes. Defaults to an empty map.
	Text *textmap.TextMap
	// Allow lists known dangling references. Defaults to allowlist.Known.
	Allow *allowlist.List
	// Catalog lists the tables Preload loads. Defaults to DefaultCatalog.
	Catalog *Catalog
	// Logger receives load diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
	Config Config
}

// Store owns every table and derived index of one dataset. Tables are loaded on first
// access and kept for the lifetime of the store.
type Store struct {
	fs      billy.Filesystem
	text    *textmap.TextMap
	allow   *allowlist.List
	catalog *Catalog
	logger  *zap.Logger
	cfg     Config

	cells *lazy.Registry
	stats sync.Map // table name -> LoadStat
}

// NewStore creates a store over the given dataset.
func NewStore(opts Options) *Store {
	s := &Store{
		fs:      opts.FS,
		text:    opts.Text,
		allow:   opts.Allow,
		catalog: opts.Catalog,
		logger:  opts.Logger,
		cfg:     opts.Config,
		cells:   lazy.NewRegistry(),
	}
	if s.text == nil {
		s.text = textmap.Empty()
	}
	if s.allow == nil {
		s.allow = allowlist.Known
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.cfg.PreloadWorkers <= 0 {
		s.cfg.PreloadWorkers = 8
	}
	return s
}

// Text resolves a text hash, "" when unknown.
func (s *Store) Text(h textmap.Hash) string {
	return s.text.Get(h)
}

// TextMap returns the localization map.
func (s *Store) TextMap() *textmap.TextMap {
	return s.text
}

// Version returns the configured dataset version.
func (s *Store) Version() string {
	return s.cfg.Version
}

// Logger returns the store's logger.
func (s *Store) Logger() *zap.Logger {
	return s.logger
}

// Catalog returns the tables known to this store.
func (s *Store) Catalog() *Catalog {
	return s.catalog
}

// FS returns the dataset filesystem.
func (s *Store) FS() billy.Filesystem {
	return s.fs
}

// AllowsDangling reports whether id may fail to resolve in field for this dataset.
func (s *Store) AllowsDangling(field, id string) bool {
	return s.allow.Allows(field, id, s.cfg.Version)
}

// Stats returns load statistics of the tables loaded so far, sorted by name.
func (s *Store) Stats() []LoadStat {
	var out []LoadStat
	s.stats.Range(func(_, v any) bool {
		out = append(out, v.(LoadStat))
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Table < out[j].Table
	})
	return out
}

// Preload loads every catalogued table concurrently and returns the first fatal error.
func (s *Store) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.PreloadWorkers)

	for _, t := range s.catalog.Tables() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return t.preload(s)
		})
	}
	return g.Wait()
}

// cell memoizes build under key for the lifetime of the store.
func cell[T any](s *Store, key string, build func() (T, error)) (T, error) {
	return lazy.Get(s.cells, key, build)
}

func (s *Store) record(stat LoadStat) {
	s.stats.Store(stat.Table, stat)
}

// read returns the first existing candidate file of a table.
func (s *Store) read(files []string) ([]byte, string, error) {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = storage.ExcelPath(f)
	}
	return storage.ReadFirst(s.fs, paths)
}

// decoder adapts decodeTable and decodeGroupTable for load.
type decoder[T any] func(data []byte, onFallback fallbackFunc) (T, Encoding, error)

// load reads and decodes one table. Missing files yield empty(); other failures are fatal.
func load[T any](s *Store, name string, files []string, decode decoder[T], empty func() T, size func(T) int) (T, error) {
	log := s.logger.With(zap.String("table", name))

	data, used, err := s.read(files)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("Table file absent, using empty table", zap.Strings("candidates", files))
		s.record(LoadStat{Table: name, Encoding: EncodingMissing})
		return empty(), nil
	}
	if err != nil {
		var zero T
		return zero, &TableError{Table: name, File: used, Err: err}
	}

	t, enc, err := decode(data, func(reason error) {
		log.Info("Row array layout rejected, trying nested object layout",
			zap.String("file", used),
			zap.String("version", s.cfg.Version),
			zap.String("reason", reason.Error()),
		)
	})
	if err != nil {
		var zero T
		return zero, &TableError{Table: name, File: used, Err: err}
	}

	n := size(t)
	log.Debug("Loaded table", zap.String("file", used), zap.String("encoding", string(enc)), zap.Int("rows", n))
	s.record(LoadStat{Table: name, File: used, Encoding: enc, Rows: n})
	return t, nil
}

// MustLoad loads a source and panics with its *TableError on failure.
func MustLoad[K comparable, R any](s *Store, src Source[K, R]) *Table[K, R] {
	t, err := src.Load(s)
	if err != nil {
		panic(asTableError(src.Name(), err))
	}
	return t
}

func asTableError(name string, err error) *TableError {
	var te *TableError
	if errors.As(err, &te) {
		return te
	}
	return &TableError{Table: name, Err: err}
}
