package intake

import (
	"context"

	"claimsportal/internal/domain"
)

// DocumentRepository is the row side of the data service for document
// metadata. The path lookups back the proxy download handler.
type DocumentRepository interface {
	CreateEnergy(ctx context.Context, doc *domain.EnergyDocument) error
	CreateOperatingCost(ctx context.Context, doc *domain.OperatingCostDocument) error
	CreateCasino(ctx context.Context, doc *domain.CasinoDocument) error
	EnergyPathByFileID(ctx context.Context, fileID string) (path, contentType string, err error)
	OperatingCostPathByFileID(ctx context.Context, fileID string) (path, contentType string, err error)
	CasinoPathByFileID(ctx context.Context, fileID string) (path, contentType string, err error)
}
