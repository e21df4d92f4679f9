package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"claimsportal/internal/domain"
	"claimsportal/internal/storage"

	"github.com/google/uuid"
)

// Vertical binds an intake category to its bucket, storage path
// prefix and API slug.
type Vertical struct {
	Slug       string // URL segment: energy | betriebskosten | casino
	Bucket     string
	PathPrefix string
}

var (
	VerticalEnergy  = Vertical{Slug: "energy", Bucket: storage.BucketEnergie, PathPrefix: "energy"}
	VerticalBetrieb = Vertical{Slug: "betriebskosten", Bucket: storage.BucketBetriebskosten, PathPrefix: "betrieb"}
	VerticalCasino  = Vertical{Slug: "casino", Bucket: storage.BucketCasino, PathPrefix: "casino"}
)

// Service stores uploaded claim documents: blob first, metadata row
// second. When the row insert fails the blob stays behind — an
// accepted orphan, surfaced to the caller as an error.
type Service struct {
	repo         DocumentRepository
	store        storage.Store
	publicAppURL string
}

func NewService(repo DocumentRepository, store storage.Store, publicAppURL string) *Service {
	return &Service{repo: repo, store: store, publicAppURL: publicAppURL}
}

func (s *Service) SubmitEnergy(ctx context.Context, sub *EnergySubmission) (*SubmitResult, error) {
	stored, err := s.storeBlob(ctx, VerticalEnergy, sub.File)
	if err != nil {
		return nil, err
	}

	doc := &domain.EnergyDocument{
		LeadID:         sub.LeadID,
		Provider:       sub.Provider,
		CustomerNumber: sub.CustomerNumber,
		FileID:         stored.fileID,
		StoragePath:    stored.path,
		PublicURL:      stored.publicURL,
		ProxyURL:       stored.proxyURL,
		ContentType:    sub.File.ContentType,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateEnergy(ctx, doc); err != nil {
		return nil, err
	}
	return &SubmitResult{FileID: stored.fileID, ProxyURL: stored.proxyURL}, nil
}

func (s *Service) SubmitOperatingCost(ctx context.Context, sub *OperatingCostSubmission) (*SubmitResult, error) {
	stored, err := s.storeBlob(ctx, VerticalBetrieb, sub.File)
	if err != nil {
		return nil, err
	}

	doc := &domain.OperatingCostDocument{
		LeadID:        sub.LeadID,
		Provider:      sub.Provider,
		DurationValue: sub.DurationValue,
		DurationUnit:  sub.DurationUnit,
		Notes:         sub.Notes,
		FileID:        stored.fileID,
		StoragePath:   stored.path,
		PublicURL:     stored.publicURL,
		ProxyURL:      stored.proxyURL,
		ContentType:   sub.File.ContentType,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.CreateOperatingCost(ctx, doc); err != nil {
		return nil, err
	}
	return &SubmitResult{FileID: stored.fileID, ProxyURL: stored.proxyURL}, nil
}

func (s *Service) SubmitCasino(ctx context.Context, sub *CasinoSubmission) (*SubmitResult, error) {
	stored, err := s.storeBlob(ctx, VerticalCasino, sub.File)
	if err != nil {
		return nil, err
	}

	providersJSON, err := json.Marshal(sub.Providers)
	if err != nil {
		return nil, err
	}

	doc := &domain.CasinoDocument{
		LeadID:            sub.LeadID,
		Providers:         string(providersJSON),
		Amount:            sub.Amount,
		Notes:             sub.Notes,
		ConsentPrivacy:    sub.ConsentPrivacy,
		ConsentConditions: sub.ConsentConditions,
		FileID:            stored.fileID,
		StoragePath:       stored.path,
		PublicURL:         stored.publicURL,
		ProxyURL:          stored.proxyURL,
		ContentType:       sub.File.ContentType,
		CreatedAt:         time.Now(),
	}
	if err := s.repo.CreateCasino(ctx, doc); err != nil {
		return nil, err
	}
	return &SubmitResult{FileID: stored.fileID, ProxyURL: stored.proxyURL}, nil
}

// Fetch streams a stored document back for the proxy endpoint. The
// content type preference is: recorded row type, then the blob's
// reported type, then octet-stream.
func (s *Service) Fetch(ctx context.Context, v Vertical, fileID string) ([]byte, string, error) {
	var (
		path        string
		contentType string
		err         error
	)
	switch v.Slug {
	case VerticalEnergy.Slug:
		path, contentType, err = s.repo.EnergyPathByFileID(ctx, fileID)
	case VerticalBetrieb.Slug:
		path, contentType, err = s.repo.OperatingCostPathByFileID(ctx, fileID)
	case VerticalCasino.Slug:
		path, contentType, err = s.repo.CasinoPathByFileID(ctx, fileID)
	default:
		return nil, "", fmt.Errorf("unknown vertical %q", v.Slug)
	}
	if err != nil || path == "" {
		return nil, "", ErrFileNotFound
	}

	data, blobType, err := s.store.Download(ctx, v.Bucket, path)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" {
		contentType = blobType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

type storedBlob struct {
	fileID    string
	path      string
	publicURL string
	proxyURL  string
}

func (s *Service) storeBlob(ctx context.Context, v Vertical, file Upload) (*storedBlob, error) {
	fileID := uuid.NewString()
	path := fmt.Sprintf("%s/%s-%s", v.PathPrefix, fileID, file.Filename)

	if err := s.store.Upload(ctx, v.Bucket, path, file.Data, file.ContentType); err != nil {
		return nil, err
	}

	return &storedBlob{
		fileID:    fileID,
		path:      path,
		publicURL: s.store.PublicURL(v.Bucket, path),
		proxyURL:  fmt.Sprintf("%s/api/%s/files/%s", s.publicAppURL, v.Slug, fileID),
	}, nil
}
