package lead

import (
	"context"

	"claimsportal/internal/domain"
)

// LeadRepository is the row side of the data service for leads and
// their loan-fee selections.
type LeadRepository interface {
	CreateWithKredit(ctx context.Context, lead *domain.Lead, kredit *domain.Kredit) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Lead, error)
	KreditByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.Kredit, error)
}

// DocumentReader batches the three document tables for a lead set.
type DocumentReader interface {
	EnergyByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.EnergyDocument, error)
	OperatingCostByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.OperatingCostDocument, error)
	CasinoByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.CasinoDocument, error)
}

// BlobProber answers whether a storage path still resolves; listing
// filters out document rows whose blob is gone.
type BlobProber interface {
	Exists(ctx context.Context, bucket, path string) bool
}
