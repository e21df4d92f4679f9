package lead

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"claimsportal/internal/domain"
	"claimsportal/internal/storage"

	"github.com/google/uuid"
)

// Service creates leads and assembles the enriched listing.
type Service struct {
	repo  LeadRepository
	docs  DocumentReader
	blobs BlobProber
}

func NewService(repo LeadRepository, docs DocumentReader, blobs BlobProber) *Service {
	return &Service{repo: repo, docs: docs, blobs: blobs}
}

// Create persists the lead together with its kredit row and returns
// the new lead id. Both inserts run in one transaction.
func (s *Service) Create(ctx context.Context, req *CreateLeadRequest) (string, error) {
	if req == nil || req.LeadData == nil || req.KreditData == nil || req.LeadData.EmployeeID == "" {
		return "", ErrPayloadIncomplete
	}

	banksJSON, err := json.Marshal(req.KreditData.SelectedBanks)
	if err != nil {
		return "", err
	}

	now := time.Now()
	ld := req.LeadData
	leadRow := &domain.Lead{
		ID:                uuid.NewString(),
		CreatedAt:         now,
		LeadType:          ld.LeadType,
		FirstName:         ld.FirstName,
		LastName:          ld.LastName,
		Email:             ld.Email,
		Phone:             ld.Phone,
		Nationality:       ld.Nationality,
		BirthDate:         ld.BirthDate,
		EmploymentStatus:  ld.EmploymentStatus,
		ConsentPrivacy:    ld.ConsentPrivacy,
		ConsentConditions: ld.ConsentConditions,
		EmployeeID:        ld.EmployeeID,
	}
	kreditRow := &domain.Kredit{
		ID:              uuid.NewString(),
		CustomerType:    req.KreditData.CustomerType,
		SelectedBanks:   string(banksJSON),
		LoanAmountRange: req.KreditData.LoanAmountRange,
		BorrowerCount:   req.KreditData.BorrowerCount,
		CreatedAt:       now,
	}

	if err := s.repo.CreateWithKredit(ctx, leadRow, kreditRow); err != nil {
		return "", err
	}
	return leadRow.ID, nil
}

// List returns leads newest-first, each enriched with its kredit
// selection and the document links whose blobs still exist. A failure
// in one document table degrades that category to empty instead of
// failing the whole listing.
func (s *Service) List(ctx context.Context, employeeID string) ([]EnrichedLead, error) {
	leads, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	leadIDs := make([]string, 0, len(leads))
	for _, l := range leads {
		leadIDs = append(leadIDs, l.ID)
	}

	kreditByLead := map[string]*KreditView{}
	if len(leadIDs) > 0 {
		kreditRows, err := s.repo.KreditByLeadIDs(ctx, leadIDs)
		if err != nil {
			return nil, err
		}
		for _, row := range kreditRows {
			if _, seen := kreditByLead[row.LeadID]; seen {
				continue // at most one kredit per lead
			}
			kreditByLead[row.LeadID] = toKreditView(row)
		}
	}

	buckets := s.fetchDocumentBuckets(ctx, leadIDs)

	enriched := make([]EnrichedLead, 0, len(leads))
	for _, l := range leads {
		group, ok := buckets[l.ID]
		if !ok {
			group = domain.EmptyDocumentGroup()
		}
		enriched = append(enriched, EnrichedLead{
			Lead:      l,
			Kredit:    kreditByLead[l.ID],
			Documents: group,
		})
	}
	return enriched, nil
}

func (s *Service) fetchDocumentBuckets(ctx context.Context, leadIDs []string) map[string]domain.DocumentGroup {
	buckets := make(map[string]domain.DocumentGroup, len(leadIDs))
	for _, id := range leadIDs {
		buckets[id] = domain.EmptyDocumentGroup()
	}
	if len(leadIDs) == 0 {
		return buckets
	}

	if energyDocs, err := s.docs.EnergyByLeadIDs(ctx, leadIDs); err != nil {
		log.Printf("lead_list warn=energie_documents_failed error=%q", err)
	} else {
		for _, doc := range energyDocs {
			if doc.LeadID == "" || !s.blobs.Exists(ctx, storage.BucketEnergie, doc.StoragePath) {
				continue
			}
			group := buckets[doc.LeadID]
			group.Energie = append(group.Energie, domain.DocumentLink{
				ID:          linkID(doc.FileID, doc.ID, doc.LeadID, "energie"),
				Provider:    providerLabel(doc.Provider),
				Reference:   doc.CustomerNumber,
				URL:         firstNonEmpty(doc.ProxyURL, doc.PublicURL),
				FallbackURL: doc.PublicURL,
				CreatedAt:   timePtr(doc.CreatedAt),
			})
			buckets[doc.LeadID] = group
		}
	}

	if operationDocs, err := s.docs.OperatingCostByLeadIDs(ctx, leadIDs); err != nil {
		log.Printf("lead_list warn=betriebskosten_documents_failed error=%q", err)
	} else {
		for _, doc := range operationDocs {
			if doc.LeadID == "" || !s.blobs.Exists(ctx, storage.BucketBetriebskosten, doc.StoragePath) {
				continue
			}
			group := buckets[doc.LeadID]
			group.Betriebskosten = append(group.Betriebskosten, domain.DocumentLink{
				ID:          linkID(doc.FileID, doc.ID, doc.LeadID, "betrieb"),
				Provider:    providerLabel(doc.Provider),
				Reference:   durationReference(doc.DurationValue, doc.DurationUnit),
				URL:         firstNonEmpty(doc.ProxyURL, doc.PublicURL),
				FallbackURL: doc.PublicURL,
				CreatedAt:   timePtr(doc.CreatedAt),
				Notes:       doc.Notes,
			})
			buckets[doc.LeadID] = group
		}
	}

	if casinoDocs, err := s.docs.CasinoByLeadIDs(ctx, leadIDs); err != nil {
		log.Printf("lead_list warn=casino_documents_failed error=%q", err)
	} else {
		for _, doc := range casinoDocs {
			if doc.LeadID == "" || !s.blobs.Exists(ctx, storage.BucketCasino, doc.StoragePath) {
				continue
			}
			group := buckets[doc.LeadID]
			group.Casino = append(group.Casino, domain.DocumentLink{
				ID:          linkID(doc.FileID, doc.ID, doc.LeadID, "casino"),
				Provider:    casinoProviderLabel(doc.Providers),
				Reference:   casinoReference(doc.Amount),
				URL:         firstNonEmpty(doc.ProxyURL, doc.PublicURL),
				FallbackURL: doc.PublicURL,
				CreatedAt:   timePtr(doc.CreatedAt),
				Notes:       doc.Notes,
			})
			buckets[doc.LeadID] = group
		}
	}

	return buckets
}

func toKreditView(row domain.Kredit) *KreditView {
	var banks []string
	if err := json.Unmarshal([]byte(row.SelectedBanks), &banks); err != nil {
		banks = nil
	}
	return &KreditView{
		ID:              row.ID,
		LeadID:          row.LeadID,
		CustomerType:    row.CustomerType,
		SelectedBanks:   banks,
		LoanAmountRange: row.LoanAmountRange,
		BorrowerCount:   row.BorrowerCount,
		CreatedAt:       row.CreatedAt,
	}
}

func linkID(fileID string, rowID int64, leadID, suffix string) string {
	if fileID != "" {
		return fileID
	}
	if rowID != 0 {
		return strconv.FormatInt(rowID, 10)
	}
	return leadID + "-" + suffix
}

func providerLabel(provider string) string {
	if provider == "" {
		return "Unbekannter Anbieter"
	}
	return provider
}

func casinoProviderLabel(providersJSON string) string {
	var providers []string
	if err := json.Unmarshal([]byte(providersJSON), &providers); err != nil || len(providers) == 0 {
		return "Casino-Verluste"
	}
	return strings.Join(providers, ", ")
}

func durationReference(value float64, unit string) string {
	if value == 0 || unit == "" {
		return ""
	}
	label := "Monate"
	if unit == "jahre" {
		label = "Jahre"
	}
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + label
}

func casinoReference(amount float64) string {
	if amount == 0 {
		return ""
	}
	return "Verlust: " + strconv.FormatFloat(amount, 'f', -1, 64) + " €"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func timePtr(t time.Time) *time.Time {
	return &t
}
