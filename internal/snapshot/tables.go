package snapshot

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gorm.io/gorm"

	"vgsales/backend/internal/models"
)

// table moves one entity between the store, the snapshot and CSV.
type table interface {
	name() string
	fetch(ctx context.Context, db *gorm.DB, s *Snapshot) (int, error)
	writeCSV(w io.Writer, s *Snapshot) error
	readCSV(r io.Reader, s *Snapshot) (int, error)
}

type codec[T any] struct {
	table  string
	header []string
	id     func(T) int64
	slot   func(*Snapshot) *[]T
	encode func(T) []string
	decode func([]string) (T, error)
}

func (c codec[T]) name() string { return c.table }

func (c codec[T]) fetch(ctx context.Context, db *gorm.DB, s *Snapshot) (int, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return 0, err
	}
	*c.slot(s) = rows
	return len(rows), nil
}

func (c codec[T]) writeCSV(w io.Writer, s *Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.header); err != nil {
		return err
	}
	for _, row := range *c.slot(s) {
		if err := cw.Write(c.encode(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (c codec[T]) readCSV(r io.Reader, s *Snapshot) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(c.header)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(header, c.header) {
		return 0, fmt.Errorf("unexpected header %v, want %v", header, c.header)
	}

	var rows []T
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		row, err := c.decode(record)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}
	// Files written by hand need not be in id order; the store's are.
	slices.SortStableFunc(rows, func(a, b T) int { return cmp.Compare(c.id(a), c.id(b)) })
	*c.slot(s) = rows
	return len(rows), nil
}

// tables lists the codecs in models.TableNames order.
var tables = []table{
	codec[models.Genre]{
		table:  models.TableGenre,
		header: []string{"id", "genre_name"},
		id:     func(r models.Genre) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.Genre { return &s.Genres },
		encode: func(r models.Genre) []string {
			return []string{formatID(r.ID), formatString(r.Name)}
		},
		decode: func(f []string) (r models.Genre, err error) {
			r.ID, err = parseID(f[0])
			r.Name = parseString(f[1])
			return r, err
		},
	},
	codec[models.Game]{
		table:  models.TableGame,
		header: []string{"id", "genre_id", "game_name"},
		id:     func(r models.Game) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.Game { return &s.Games },
		encode: func(r models.Game) []string {
			return []string{formatID(r.ID), formatID(r.GenreID), formatString(r.Name)}
		},
		decode: func(f []string) (r models.Game, err error) {
			err = parseIDs(f[:2], &r.ID, &r.GenreID)
			r.Name = parseString(f[2])
			return r, err
		},
	},
	codec[models.GamePlatform]{
		table:  models.TableGamePlatform,
		header: []string{"id", "game_publisher_id", "platform_id", "release_year"},
		id:     func(r models.GamePlatform) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.GamePlatform { return &s.GamePlatforms },
		encode: func(r models.GamePlatform) []string {
			return []string{formatID(r.ID), formatID(r.GamePublisherID), formatID(r.PlatformID), formatInt(r.ReleaseYear)}
		},
		decode: func(f []string) (r models.GamePlatform, err error) {
			if err = parseIDs(f[:3], &r.ID, &r.GamePublisherID, &r.PlatformID); err != nil {
				return r, err
			}
			r.ReleaseYear, err = parseInt(f[3])
			return r, err
		},
	},
	codec[models.GamePublisher]{
		table:  models.TableGamePublisher,
		header: []string{"id", "game_id", "publisher_id"},
		id:     func(r models.GamePublisher) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.GamePublisher { return &s.GamePublishers },
		encode: func(r models.GamePublisher) []string {
			return []string{formatID(r.ID), formatID(r.GameID), formatID(r.PublisherID)}
		},
		decode: func(f []string) (r models.GamePublisher, err error) {
			err = parseIDs(f, &r.ID, &r.GameID, &r.PublisherID)
			return r, err
		},
	},
	codec[models.Platform]{
		table:  models.TablePlatform,
		header: []string{"id", "platform_name"},
		id:     func(r models.Platform) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.Platform { return &s.Platforms },
		encode: func(r models.Platform) []string {
			return []string{formatID(r.ID), formatString(r.Name)}
		},
		decode: func(f []string) (r models.Platform, err error) {
			r.ID, err = parseID(f[0])
			r.Name = parseString(f[1])
			return r, err
		},
	},
	codec[models.Publisher]{
		table:  models.TablePublisher,
		header: []string{"id", "publisher_name"},
		id:     func(r models.Publisher) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.Publisher { return &s.Publishers },
		encode: func(r models.Publisher) []string {
			return []string{formatID(r.ID), formatString(r.Name)}
		},
		decode: func(f []string) (r models.Publisher, err error) {
			r.ID, err = parseID(f[0])
			r.Name = parseString(f[1])
			return r, err
		},
	},
	codec[models.Region]{
		table:  models.TableRegion,
		header: []string{"id", "region_name"},
		id:     func(r models.Region) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.Region { return &s.Regions },
		encode: func(r models.Region) []string {
			return []string{formatID(r.ID), formatString(r.Name)}
		},
		decode: func(f []string) (r models.Region, err error) {
			r.ID, err = parseID(f[0])
			r.Name = parseString(f[1])
			return r, err
		},
	},
	codec[models.RegionSales]{
		table:  models.TableRegionSales,
		header: []string{"id", "game_platform_id", "region_id", "num_sales"},
		id:     func(r models.RegionSales) int64 { return r.ID },
		slot:   func(s *Snapshot) *[]models.RegionSales { return &s.RegionSales },
		encode: func(r models.RegionSales) []string {
			return []string{formatID(r.ID), formatID(r.GamePlatformID), formatID(r.RegionID), formatFloat(r.NumSales)}
		},
		decode: func(f []string) (r models.RegionSales, err error) {
			if err = parseIDs(f[:3], &r.ID, &r.GamePlatformID, &r.RegionID); err != nil {
				return r, err
			}
			r.NumSales, err = parseFloat(f[3])
			return r, err
		},
	},
}

// nullField marks NULL in CSV, as MySQL's LOAD DATA does, so that an empty
// field stays an empty string. Numeric columns also read an empty field as
// NULL.
const nullField = `\N`

func formatID(v int64) string { return strconv.FormatInt(v, 10) }

func formatString(v sql.NullString) string {
	if !v.Valid {
		return nullField
	}
	return v.String
}

func formatInt(v sql.NullInt64) string {
	if !v.Valid {
		return nullField
	}
	return strconv.FormatInt(v.Int64, 10)
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return nullField
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

func parseID(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return v, nil
}

func parseIDs(fields []string, dst ...*int64) error {
	for i, d := range dst {
		v, err := parseID(fields[i])
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

func parseString(s string) sql.NullString {
	if s == nullField {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func parseInt(s string) (sql.NullInt64, error) {
	if s == "" || s == nullField {
		return sql.NullInt64{}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return sql.NullInt64{Int64: v, Valid: true}, nil
}

func parseFloat(s string) (sql.NullFloat64, error) {
	if s == "" || s == nullField {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}
