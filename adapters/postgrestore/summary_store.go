package postgrestore

import (
	"context"
	"fmt"

	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/jmoiron/sqlx"
)

type SummaryStore struct {
	db *sqlx.DB
}

func NewSummaryStore(db *sqlx.DB) *SummaryStore {
	return &SummaryStore{db}
}

func (s *SummaryStore) Summary(ctx context.Context) (customer.Summary, error) {
	var result customer.Summary
	err := s.db.GetContext(ctx, &result, s.db.Rebind(`
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN active THEN 1 ELSE 0 END), 0) AS active,
		       COALESCE(SUM(reward_points), 0) AS reward_points
		FROM customers`))
	if err != nil {
		return customer.Summary{}, fmt.Errorf("cannot summarize customers: %w", err)
	}

	return result, nil
}
