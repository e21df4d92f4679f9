package repository

import (
	"context"

	"claimsportal/internal/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, lead *domain.CampaignLead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *CampaignRepository) ListByAdmin(ctx context.Context, adminID string) ([]domain.CampaignLead, error) {
	var leads []domain.CampaignLead
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if adminID != "" {
		q = q.Where("admin_id = ?", adminID)
	}
	err := q.Find(&leads).Error
	return leads, err
}
