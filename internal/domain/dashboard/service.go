package dashboard

import "context"

type DashboardService interface {
	// Summary aggregates the tenant-wide counters plus the caller's own
	// upcoming reminder occurrences for the rest of today.
	Summary(ctx context.Context, companyID, userID string) (SummaryResponse, error)
}
