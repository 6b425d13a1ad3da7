package repository

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"bumblebee-api/pkg/metrics"
)

// ErrNotFound is returned when no row matches; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func observe(start time.Time, operation, table string) {
	metrics.RecordDBQueryDuration(operation, table, time.Since(start))
}
