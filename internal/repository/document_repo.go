package repository

import (
	"context"

	"claimsportal/internal/domain"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) CreateEnergy(ctx context.Context, doc *domain.EnergyDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) CreateOperatingCost(ctx context.Context, doc *domain.OperatingCostDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) CreateCasino(ctx context.Context, doc *domain.CasinoDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *DocumentRepository) EnergyByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.EnergyDocument, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}
	var docs []domain.EnergyDocument
	err := r.db.WithContext(ctx).Where("lead_id IN ?", leadIDs).Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) OperatingCostByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.OperatingCostDocument, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}
	var docs []domain.OperatingCostDocument
	err := r.db.WithContext(ctx).Where("lead_id IN ?", leadIDs).Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) CasinoByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.CasinoDocument, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}
	var docs []domain.CasinoDocument
	err := r.db.WithContext(ctx).Where("lead_id IN ?", leadIDs).Find(&docs).Error
	return docs, err
}

// storagePathRow is shared by the per-vertical file-id lookups; the
// proxy handler only needs the path and recorded type.
type storagePathRow struct {
	StoragePath string `gorm:"column:document_storage_path"`
	ContentType string `gorm:"column:content_type"`
}

func (r *DocumentRepository) EnergyPathByFileID(ctx context.Context, fileID string) (string, string, error) {
	return r.pathByFileID(ctx, "energie_daten", fileID)
}

func (r *DocumentRepository) OperatingCostPathByFileID(ctx context.Context, fileID string) (string, string, error) {
	return r.pathByFileID(ctx, "betriebskosten_daten", fileID)
}

func (r *DocumentRepository) CasinoPathByFileID(ctx context.Context, fileID string) (string, string, error) {
	return r.pathByFileID(ctx, "casino_verluste_daten", fileID)
}

func (r *DocumentRepository) pathByFileID(ctx context.Context, table, fileID string) (string, string, error) {
	var row storagePathRow
	err := r.db.WithContext(ctx).
		Table(table).
		Select("document_storage_path", "content_type").
		Where("file_id = ?", fileID).
		Take(&row).Error
	if err != nil {
		return "", "", err
	}
	return row.StoragePath, row.ContentType, nil
}
