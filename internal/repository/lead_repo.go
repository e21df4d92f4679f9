package repository

import (
	"context"

	"claimsportal/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// CreateWithKredit inserts the lead and its loan-fee row in one
// transaction, so a failed second insert never leaves an orphaned lead.
func (r *LeadRepository) CreateWithKredit(ctx context.Context, lead *domain.Lead, kredit *domain.Kredit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lead).Error; err != nil {
			return err
		}
		kredit.LeadID = lead.ID
		return tx.Create(kredit).Error
	})
}

// ListByEmployee returns leads newest-first, optionally filtered to
// one employee.
func (r *LeadRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Lead, error) {
	var leads []domain.Lead
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	err := q.Find(&leads).Error
	return leads, err
}

// KreditByLeadIDs batches the loan-fee rows for a lead set. Callers
// keep at most one row per lead.
func (r *LeadRepository) KreditByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.Kredit, error) {
	if len(leadIDs) == 0 {
		return nil, nil
	}
	var rows []domain.Kredit
	err := r.db.WithContext(ctx).Where("lead_id IN ?", leadIDs).Find(&rows).Error
	return rows, err
}
