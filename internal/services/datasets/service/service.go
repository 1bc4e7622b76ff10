// Package service loads datasets once and serves them read only
package service

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"vizdash/internal/adapters/fetch"
	"vizdash/internal/core/table"
	"vizdash/internal/datasets"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	"vizdash/internal/platform/metrics"
	"vizdash/internal/platform/store/pg"
	dom "vizdash/internal/services/datasets/domain"
	"vizdash/internal/services/datasets/repo"

	"github.com/google/uuid"
)

// Spec configures one dataset
type Spec struct {
	Name   string
	Source dom.Source
	// Limit keeps the first Limit rows, 0 keeps all
	Limit int
}

// Config for the catalog
type Config struct {
	Datasets []Spec
}

// Backends are the optional readers, nil when the backend is disabled
type Backends struct {
	PG repo.Storage
	CH repo.Storage
	// URL downloads url sources, .gz files are decompressed
	URL fetch.Fetcher
}

type entry struct {
	tbl  *table.Table
	info dom.Info
}

// Service implements domain.CatalogPort and domain.ReloaderPort
type Service struct {
	cfg      Config
	backends Backends
	metrics  *metrics.Metrics

	mu      sync.RWMutex
	entries map[string]entry

	// seams for tests
	now     func() time.Time
	newID   func() string
	openCSV func(path string) (io.ReadCloser, error)
}

// New constructs a catalog; call LoadAll before serving
func New(cfg Config, b Backends, m *metrics.Metrics) *Service {
	return &Service{
		cfg:      cfg,
		backends: b,
		metrics:  m,
		entries:  make(map[string]entry, len(cfg.Datasets)),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
		openCSV:  func(p string) (io.ReadCloser, error) { return os.Open(p) },
	}
}

// LoadAll reads every configured dataset and stops at the first failure
func (s *Service) LoadAll(ctx context.Context) error {
	for _, spec := range s.cfg.Datasets {
		if _, err := s.load(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// Reload implements domain.ReloaderPort
// the previous snapshot keeps serving when the new read fails
func (s *Service) Reload(ctx context.Context, name string) (dom.Info, error) {
	for _, spec := range s.cfg.Datasets {
		if spec.Name == name {
			return s.load(ctx, spec)
		}
	}
	return dom.Info{}, perr.NotFoundf("dataset %q not found", name)
}

func (s *Service) load(ctx context.Context, spec Spec) (dom.Info, error) {
	log := logger.Named("datasets").With().Str("dataset", spec.Name).Str("source", spec.Source.String()).Logger()
	start := s.now()

	tbl, err := s.read(pg.WithDataset(ctx, spec.Name), spec)
	if err != nil {
		s.metrics.DatasetFailed(spec.Name)
		log.Error().Err(err).Msg("dataset load failed")
		return dom.Info{}, perr.WithOp(err, "datasets.load")
	}

	elapsed := s.now().Sub(start)
	info := dom.Info{
		Name:     spec.Name,
		Rows:     tbl.Len(),
		Columns:  columns(tbl.Schema()),
		Source:   spec.Source.String(),
		LoadedAt: start.UTC(),
		LoadMS:   float64(elapsed.Microseconds()) / 1000,
		Snapshot: s.newID(),
	}

	s.mu.Lock()
	s.entries[spec.Name] = entry{tbl: tbl, info: info}
	s.mu.Unlock()

	s.metrics.DatasetLoaded(spec.Name, string(spec.Source.Kind), tbl.Len())
	log.Info().
		Int("rows", info.Rows).
		Int("columns", len(info.Columns)).
		Dur("elapsed", elapsed).
		Str("snapshot", info.Snapshot).
		Msg("dataset loaded")
	return info, nil
}

func (s *Service) read(ctx context.Context, spec Spec) (*table.Table, error) {
	schema, ok := datasets.Schema(spec.Name)
	if !ok {
		return nil, perr.NotFoundf("dataset %q has no schema", spec.Name)
	}

	switch spec.Source.Kind {
	case dom.SourceSample, "":
		rc, err := datasets.OpenSample(spec.Name)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeLoad, "open sample")
		}
		return readCSV(rc, schema, spec.Limit)
	case dom.SourceFile:
		rc, err := s.openCSV(spec.Source.Target)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeLoad, "open %s", spec.Source.Target)
		}
		return readCSV(rc, schema, spec.Limit)
	case dom.SourceURL:
		if s.backends.URL == nil {
			return nil, perr.Unavailablef("dataset %q reads from a url but no fetcher is configured", spec.Name)
		}
		rc, err := fetch.Open(ctx, s.backends.URL, spec.Source.Target)
		if err != nil {
			return nil, err
		}
		return readCSV(rc, schema, spec.Limit)
	case dom.SourcePG:
		if s.backends.PG == nil {
			return nil, perr.Unavailablef("dataset %q reads from postgres but SERVICE_PGSQL_DBURL is unset", spec.Name)
		}
		return s.backends.PG.Load(ctx, schema, spec.Source.Target, spec.Limit)
	case dom.SourceCH:
		if s.backends.CH == nil {
			return nil, perr.Unavailablef("dataset %q reads from clickhouse but SERVICE_CLICKHOUSE_DBURL is unset", spec.Name)
		}
		return s.backends.CH.Load(ctx, schema, spec.Source.Target, spec.Limit)
	}
	return nil, perr.InvalidArgf("dataset %q: unsupported source %q", spec.Name, spec.Source.Kind)
}

func readCSV(rc io.ReadCloser, schema table.Schema, limit int) (*table.Table, error) {
	defer rc.Close()
	tbl, err := table.ReadCSV(rc, schema, table.CSVOptions{Limit: limit})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeLoad, "parse csv")
	}
	return tbl, nil
}

func columns(s table.Schema) []dom.Column {
	out := make([]dom.Column, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = dom.Column{Name: c.Name, Kind: c.Kind.String()}
	}
	return out
}

// Names implements domain.CatalogPort, in configuration order
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.entries))
	for _, spec := range s.cfg.Datasets {
		if _, ok := s.entries[spec.Name]; ok {
			out = append(out, spec.Name)
		}
	}
	return out
}

// List implements domain.CatalogPort
func (s *Service) List() []dom.Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dom.Info, 0, len(s.entries))
	for _, spec := range s.cfg.Datasets {
		if e, ok := s.entries[spec.Name]; ok {
			out = append(out, e.info)
		}
	}
	return out
}

// Info implements domain.CatalogPort
func (s *Service) Info(name string) (dom.Info, error) {
	_, info, err := s.Table(name)
	return info, err
}

// Table implements domain.CatalogPort
func (s *Service) Table(name string) (*table.Table, dom.Info, error) {
	s.mu.RLock()
	e, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return nil, dom.Info{}, perr.WithField(perr.NotFoundf("dataset %q not found", name), "dataset")
	}
	return e.tbl, e.info, nil
}
