// Package relational answers the analytics questions with parameterized join
// queries against the live store.
package relational

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"gorm.io/gorm"

	"vgsales/backend/internal/logging"
	"vgsales/backend/internal/metrics"
	"vgsales/backend/internal/query"
)

const breakerName = "video-games-store"

// Engine queries the store through gorm. Every call runs behind a circuit
// breaker and under the caller's context.
type Engine struct {
	db *gorm.DB
	cb *gobreaker.CircuitBreaker[any]
}

var _ query.Engine = (*Engine)(nil)

// New returns an engine over db.
func New(db *gorm.DB) *Engine {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		// Opens at 60% failures over at least 10 requests.
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.6
		},
		// A caller giving up is not a store failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &Engine{db: db, cb: cb}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Name implements query.Engine.
func (e *Engine) Name() string { return query.EngineSQL }

// run executes fn behind the breaker and converts any failure into a
// query.BackendError.
func run[T any](ctx context.Context, e *Engine, shape string, fn func(tx *gorm.DB) ([]T, error)) ([]T, error) {
	start := time.Now()
	out, err := e.cb.Execute(func() (any, error) {
		return fn(e.db.WithContext(ctx))
	})
	metrics.ObserveQuery(query.EngineSQL, shape, start, err)
	if err != nil {
		return nil, query.Backend(shape, err)
	}

	rows, _ := out.([]T)
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// scan runs a built query into a fresh slice.
func scan[T any](q *gorm.DB) ([]T, error) {
	var rows []T
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
