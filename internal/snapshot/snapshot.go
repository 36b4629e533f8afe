// Package snapshot holds the one-time, read-only in-memory copy of the eight
// store tables and its flat-file (CSV) export.
//
// A Snapshot is built once by Load or ReadDir and never mutated afterwards,
// so it can be shared by concurrent requests without locking. It does not
// follow later changes to the store.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"vgsales/backend/internal/logging"
	"vgsales/backend/internal/metrics"
	"vgsales/backend/internal/models"
)

// Snapshot is the in-memory cache of every table, rows ordered by id.
type Snapshot struct {
	Genres         []models.Genre
	Games          []models.Game
	GamePlatforms  []models.GamePlatform
	GamePublishers []models.GamePublisher
	Platforms      []models.Platform
	Publishers     []models.Publisher
	Regions        []models.Region
	RegionSales    []models.RegionSales

	TakenAt time.Time

	rows   map[string]int
	failed map[string]error
}

func newSnapshot() *Snapshot {
	return &Snapshot{
		TakenAt: time.Now(),
		rows:    make(map[string]int, len(models.TableNames)),
		failed:  make(map[string]error),
	}
}

// Has reports whether table loaded.
func (s *Snapshot) Has(table string) bool {
	_, ok := s.rows[table]
	return ok
}

// Rows returns the row count per loaded table.
func (s *Snapshot) Rows() map[string]int {
	out := make(map[string]int, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

// Missing lists the tables that failed to load, in load order.
func (s *Snapshot) Missing() []string {
	var out []string
	for _, name := range models.TableNames {
		if !s.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// Ready returns nil when every table loaded, otherwise an error naming each
// missing table and its cause.
func (s *Snapshot) Ready() error {
	var errs []error
	for _, name := range s.Missing() {
		cause := s.failed[name]
		if cause == nil {
			cause = errors.New("not loaded")
		}
		errs = append(errs, fmt.Errorf("%s: %w", name, cause))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("snapshot incomplete: %w", errors.Join(errs...))
}

func (s *Snapshot) record(table string, n int, err error) {
	if err != nil {
		s.failed[table] = err
		metrics.SnapshotLoadFailures.WithLabelValues(table).Inc()
		logging.Error().Err(err).Str("table", table).Msg("table not loaded into snapshot")
		return
	}
	s.rows[table] = n
	metrics.SnapshotRows.WithLabelValues(table).Set(float64(n))
	logging.Info().Str("table", table).Int("rows", n).Msg("table loaded into snapshot")
}

// Load selects every row of every table from db. A table that fails is
// logged and left out; loading continues with the remaining tables. When
// dir is not empty each loaded table is also written to dir/<table>.csv.
//
// The snapshot is always returned; the error is Ready's verdict on it.
func Load(ctx context.Context, db *gorm.DB, dir string) (*Snapshot, error) {
	s := newSnapshot()
	for _, t := range tables {
		n, err := t.fetch(ctx, db, s)
		s.record(t.name(), n, err)
	}
	if dir != "" {
		if err := Export(s, dir); err != nil {
			logging.Error().Err(err).Str("dir", dir).Msg("snapshot export incomplete")
		}
	}
	return s, s.Ready()
}

// ReadDir builds a snapshot from the CSV files Export writes.
func ReadDir(dir string) (*Snapshot, error) {
	s := newSnapshot()
	for _, t := range tables {
		n, err := readFile(filepath.Join(dir, t.name()+".csv"), t, s)
		s.record(t.name(), n, err)
	}
	return s, s.Ready()
}

func readFile(path string, t table, s *Snapshot) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return t.readCSV(f, s)
}

// Export writes every loaded table to dir/<table>.csv. A failing table does
// not stop the others; all failures are returned joined.
func Export(s *Snapshot, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	var errs []error
	for _, t := range tables {
		if !s.Has(t.name()) {
			continue
		}
		path := filepath.Join(dir, t.name()+".csv")
		if err := writeFile(path, t, s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.name(), err))
			continue
		}
		logging.Info().Str("table", t.name()).Str("path", path).Msg("table exported")
	}
	return errors.Join(errs...)
}

func writeFile(path string, t table, s *Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return t.writeCSV(f, s)
}
