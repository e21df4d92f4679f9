package campaign

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"claimsportal/internal/domain"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, lead *domain.CampaignLead) error
	ListByAdmin(ctx context.Context, adminID string) ([]domain.CampaignLead, error)
}

var (
	validPersonas  = map[string]bool{"private": true, "business": true}
	validBorrowers = map[string]bool{"single": true, "multiple": true}
)

// Service validates and stores campaign leads arriving from the
// public marketing funnel.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit checks each rule in order and stops at the first violation,
// so the funnel can surface the matching message. Email is lower-cased
// before insert.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (string, error) {
	if req.AdminID == "" {
		return "", ErrMissingAdmin
	}
	if !validPersonas[req.Persona] {
		return "", ErrInvalidPersona
	}
	if len(req.SelectedBanks) == 0 {
		return "", ErrNoBanks
	}
	if !validBorrowers[req.BorrowerCount] {
		return "", ErrNoBorrowerCount
	}
	if req.LoanAmountRange == "" {
		return "", ErrNoLoanAmount
	}
	if strings.TrimSpace(req.ContactName) == "" ||
		strings.TrimSpace(req.ContactPhone) == "" ||
		strings.TrimSpace(req.ContactEmail) == "" {
		return "", ErrNoContact
	}
	if !req.ConsentPrivacy || !req.ConsentTerms {
		return "", ErrConsentsMissing
	}

	banksJSON, err := json.Marshal(req.SelectedBanks)
	if err != nil {
		return "", err
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}

	lead := &domain.CampaignLead{
		ID:              uuid.NewString(),
		AdminID:         req.AdminID,
		Persona:         req.Persona,
		SelectedBanks:   string(banksJSON),
		LoanAmountRange: req.LoanAmountRange,
		BorrowerCount:   req.BorrowerCount,
		ContactName:     req.ContactName,
		ContactPhone:    req.ContactPhone,
		ContactEmail:    strings.ToLower(req.ContactEmail),
		ConsentPrivacy:  req.ConsentPrivacy,
		ConsentTerms:    req.ConsentTerms,
		Metadata:        string(metadataJSON),
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

// List returns campaign leads newest-first, optionally filtered to
// one admin, with the JSON text columns decoded for display.
func (s *Service) List(ctx context.Context, adminID string) ([]LeadView, error) {
	rows, err := s.repo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	views := make([]LeadView, 0, len(rows))
	for _, row := range rows {
		var banks []string
		if err := json.Unmarshal([]byte(row.SelectedBanks), &banks); err != nil {
			banks = nil
		}
		var metadata map[string]any
		if err := json.Unmarshal([]byte(row.Metadata), &metadata); err != nil {
			metadata = map[string]any{}
		}
		views = append(views, LeadView{
			ID:              row.ID,
			AdminID:         row.AdminID,
			Persona:         row.Persona,
			SelectedBanks:   banks,
			LoanAmountRange: row.LoanAmountRange,
			BorrowerCount:   row.BorrowerCount,
			ContactName:     row.ContactName,
			ContactPhone:    row.ContactPhone,
			ContactEmail:    row.ContactEmail,
			Metadata:        metadata,
			CreatedAt:       row.CreatedAt,
		})
	}
	return views, nil
}

// IsValidationError reports whether err names a violated input rule
// (as opposed to an upstream failure).
func IsValidationError(err error) bool {
	switch err {
	case ErrMissingAdmin, ErrInvalidPersona, ErrNoBanks,
		ErrNoBorrowerCount, ErrNoLoanAmount, ErrNoContact, ErrConsentsMissing:
		return true
	}
	return false
}
