package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns the dashboard aggregate counts.
func (r *StatsRepository) Counts(ctx context.Context) (*model.DashboardStats, error) {
	defer observe(time.Now(), "select", "dashboard")

	var stats model.DashboardStats
	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM Users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM Companies`, &stats.TotalCompanies},
		{`SELECT COUNT(*) FROM Donations`, &stats.TotalDonations},
		{`SELECT COUNT(*) FROM FundingRequests`, &stats.TotalFundingRequests},
	}
	for _, c := range counts {
		if err := r.db.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
