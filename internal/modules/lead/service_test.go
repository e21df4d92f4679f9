package lead

import (
	"context"
	"errors"
	"testing"
	"time"

	"claimsportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateWithKredit(ctx context.Context, lead *domain.Lead, kredit *domain.Kredit) error {
	args := m.Called(ctx, lead, kredit)
	return args.Error(0)
}

func (m *MockLeadRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Lead, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) KreditByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.Kredit, error) {
	args := m.Called(ctx, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kredit), args.Error(1)
}

type MockDocumentReader struct {
	mock.Mock
}

func (m *MockDocumentReader) EnergyByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.EnergyDocument, error) {
	args := m.Called(ctx, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnergyDocument), args.Error(1)
}

func (m *MockDocumentReader) OperatingCostByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.OperatingCostDocument, error) {
	args := m.Called(ctx, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OperatingCostDocument), args.Error(1)
}

func (m *MockDocumentReader) CasinoByLeadIDs(ctx context.Context, leadIDs []string) ([]domain.CasinoDocument, error) {
	args := m.Called(ctx, leadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CasinoDocument), args.Error(1)
}

type MockBlobProber struct {
	mock.Mock
}

func (m *MockBlobProber) Exists(ctx context.Context, bucket, path string) bool {
	args := m.Called(ctx, bucket, path)
	return args.Bool(0)
}

func newTestService() (*Service, *MockLeadRepository, *MockDocumentReader, *MockBlobProber) {
	repo := new(MockLeadRepository)
	docs := new(MockDocumentReader)
	blobs := new(MockBlobProber)
	return NewService(repo, docs, blobs), repo, docs, blobs
}

func validCreateRequest() *CreateLeadRequest {
	return &CreateLeadRequest{
		LeadData: &LeadData{
			LeadType:          "neu",
			FirstName:         "Max",
			LastName:          "Mustermann",
			Email:             "max@example.at",
			EmploymentStatus:  "Angestellt",
			ConsentPrivacy:    true,
			ConsentConditions: true,
			EmployeeID:        "emp-1",
		},
		KreditData: &KreditData{
			CustomerType:    "privat",
			SelectedBanks:   []string{"Bank Austria", "Erste Bank"},
			LoanAmountRange: "10.000 – 50.000 €",
			BorrowerCount:   "single",
		},
	}
}

func TestCreate_PersistsLeadAndKreditTogether(t *testing.T) {
	svc, repo, _, _ := newTestService()

	var gotLead *domain.Lead
	var gotKredit *domain.Kredit
	repo.On("CreateWithKredit", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotLead = args.Get(1).(*domain.Lead)
			gotKredit = args.Get(2).(*domain.Kredit)
		}).
		Return(nil)

	leadID, err := svc.Create(context.Background(), validCreateRequest())

	assert.NoError(t, err)
	assert.NotEmpty(t, leadID)
	assert.Equal(t, leadID, gotLead.ID)
	assert.Equal(t, "emp-1", gotLead.EmployeeID)
	assert.Equal(t, "neu", gotLead.LeadType)
	assert.NotEmpty(t, gotKredit.ID)
	assert.JSONEq(t, `["Bank Austria","Erste Bank"]`, gotKredit.SelectedBanks)
	repo.AssertExpectations(t)
}

func TestCreate_RejectsIncompletePayload(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPayloadIncomplete)

	_, err = svc.Create(context.Background(), &CreateLeadRequest{LeadData: &LeadData{EmployeeID: "emp-1"}})
	assert.ErrorIs(t, err, ErrPayloadIncomplete)

	_, err = svc.Create(context.Background(), &CreateLeadRequest{KreditData: &KreditData{}})
	assert.ErrorIs(t, err, ErrPayloadIncomplete)

	req := validCreateRequest()
	req.LeadData.EmployeeID = ""
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrPayloadIncomplete)

	repo.AssertNotCalled(t, "CreateWithKredit")
}

func TestCreate_PropagatesRepositoryError(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.On("CreateWithKredit", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.Error(t, err)
}

func TestList_EnrichesLeadsWithKreditAndDocuments(t *testing.T) {
	svc, repo, docs, blobs := newTestService()
	now := time.Now()

	leads := []domain.Lead{
		{ID: "lead-1", EmployeeID: "emp-1", FirstName: "Max"},
		{ID: "lead-2", EmployeeID: "emp-1", FirstName: "Anna"},
	}
	repo.On("ListByEmployee", mock.Anything, "emp-1").Return(leads, nil)
	repo.On("KreditByLeadIDs", mock.Anything, []string{"lead-1", "lead-2"}).Return([]domain.Kredit{
		{ID: "k-1", LeadID: "lead-1", SelectedBanks: `["Bank Austria"]`, LoanAmountRange: "bis 10.000 €"},
	}, nil)

	docs.On("EnergyByLeadIDs", mock.Anything, mock.Anything).Return([]domain.EnergyDocument{
		{ID: 1, LeadID: "lead-1", Provider: "Wien Energie", CustomerNumber: "KN-42",
			FileID: "file-a", StoragePath: "energy/file-a-rechnung.pdf",
			PublicURL: "https://blob/a", ProxyURL: "https://app/api/energy/files/file-a", CreatedAt: now},
	}, nil)
	docs.On("OperatingCostByLeadIDs", mock.Anything, mock.Anything).Return([]domain.OperatingCostDocument{}, nil)
	docs.On("CasinoByLeadIDs", mock.Anything, mock.Anything).Return([]domain.CasinoDocument{}, nil)
	blobs.On("Exists", mock.Anything, mock.Anything, "energy/file-a-rechnung.pdf").Return(true)

	enriched, err := svc.List(context.Background(), "emp-1")

	assert.NoError(t, err)
	assert.Len(t, enriched, 2)

	first := enriched[0]
	assert.Equal(t, "lead-1", first.ID)
	assert.NotNil(t, first.Kredit)
	assert.Equal(t, []string{"Bank Austria"}, first.Kredit.SelectedBanks)
	assert.Len(t, first.Documents.Energie, 1)
	assert.Equal(t, "file-a", first.Documents.Energie[0].ID)
	assert.Equal(t, "Wien Energie", first.Documents.Energie[0].Provider)
	assert.Equal(t, "KN-42", first.Documents.Energie[0].Reference)
	assert.Equal(t, "https://app/api/energy/files/file-a", first.Documents.Energie[0].URL)

	second := enriched[1]
	assert.Nil(t, second.Kredit)
	assert.Empty(t, second.Documents.Energie)
	assert.NotNil(t, second.Documents.Energie)
}

func TestList_FiltersDocumentsWithMissingBlobs(t *testing.T) {
	svc, repo, docs, blobs := newTestService()

	repo.On("ListByEmployee", mock.Anything, "emp-1").Return([]domain.Lead{{ID: "lead-1"}}, nil)
	repo.On("KreditByLeadIDs", mock.Anything, mock.Anything).Return([]domain.Kredit{}, nil)

	docs.On("EnergyByLeadIDs", mock.Anything, mock.Anything).Return([]domain.EnergyDocument{
		{ID: 1, LeadID: "lead-1", FileID: "gone", StoragePath: "energy/gone.pdf"},
		{ID: 2, LeadID: "lead-1", FileID: "there", StoragePath: "energy/there.pdf"},
	}, nil)
	docs.On("OperatingCostByLeadIDs", mock.Anything, mock.Anything).Return([]domain.OperatingCostDocument{}, nil)
	docs.On("CasinoByLeadIDs", mock.Anything, mock.Anything).Return([]domain.CasinoDocument{}, nil)

	blobs.On("Exists", mock.Anything, mock.Anything, "energy/gone.pdf").Return(false)
	blobs.On("Exists", mock.Anything, mock.Anything, "energy/there.pdf").Return(true)

	enriched, err := svc.List(context.Background(), "emp-1")

	assert.NoError(t, err)
	assert.Len(t, enriched[0].Documents.Energie, 1)
	assert.Equal(t, "there", enriched[0].Documents.Energie[0].ID)
}

func TestList_DocumentTableFailureDegradesToEmpty(t *testing.T) {
	svc, repo, docs, blobs := newTestService()

	repo.On("ListByEmployee", mock.Anything, "emp-1").Return([]domain.Lead{{ID: "lead-1"}}, nil)
	repo.On("KreditByLeadIDs", mock.Anything, mock.Anything).Return([]domain.Kredit{}, nil)

	docs.On("EnergyByLeadIDs", mock.Anything, mock.Anything).Return(nil, errors.New("table missing"))
	docs.On("OperatingCostByLeadIDs", mock.Anything, mock.Anything).Return([]domain.OperatingCostDocument{
		{ID: 5, LeadID: "lead-1", Provider: "Hausverwaltung", DurationValue: 3, DurationUnit: "jahre",
			StoragePath: "betrieb/x.pdf", PublicURL: "https://blob/x"},
	}, nil)
	docs.On("CasinoByLeadIDs", mock.Anything, mock.Anything).Return([]domain.CasinoDocument{}, nil)
	blobs.On("Exists", mock.Anything, mock.Anything, "betrieb/x.pdf").Return(true)

	enriched, err := svc.List(context.Background(), "emp-1")

	assert.NoError(t, err)
	assert.Empty(t, enriched[0].Documents.Energie)
	assert.Len(t, enriched[0].Documents.Betriebskosten, 1)
	assert.Equal(t, "3 Jahre", enriched[0].Documents.Betriebskosten[0].Reference)
	// no file id on the row: the db id becomes the link id
	assert.Equal(t, "5", enriched[0].Documents.Betriebskosten[0].ID)
}

func TestList_CasinoLabelsAndReferences(t *testing.T) {
	svc, repo, docs, blobs := newTestService()

	repo.On("ListByEmployee", mock.Anything, "emp-1").Return([]domain.Lead{{ID: "lead-1"}}, nil)
	repo.On("KreditByLeadIDs", mock.Anything, mock.Anything).Return([]domain.Kredit{}, nil)

	docs.On("EnergyByLeadIDs", mock.Anything, mock.Anything).Return([]domain.EnergyDocument{}, nil)
	docs.On("OperatingCostByLeadIDs", mock.Anything, mock.Anything).Return([]domain.OperatingCostDocument{}, nil)
	docs.On("CasinoByLeadIDs", mock.Anything, mock.Anything).Return([]domain.CasinoDocument{
		{ID: 7, LeadID: "lead-1", Providers: `["win2day","bwin"]`, Amount: 1234.5,
			FileID: "file-c", StoragePath: "casino/file-c.pdf", PublicURL: "https://blob/c"},
		{ID: 8, LeadID: "lead-1", Providers: `not-json`, Amount: 0,
			FileID: "file-d", StoragePath: "casino/file-d.pdf", PublicURL: "https://blob/d"},
	}, nil)
	blobs.On("Exists", mock.Anything, mock.Anything, mock.Anything).Return(true)

	enriched, err := svc.List(context.Background(), "emp-1")

	assert.NoError(t, err)
	casino := enriched[0].Documents.Casino
	assert.Len(t, casino, 2)
	assert.Equal(t, "win2day, bwin", casino[0].Provider)
	assert.Equal(t, "Verlust: 1234.5 €", casino[0].Reference)
	assert.Equal(t, "Casino-Verluste", casino[1].Provider)
	assert.Empty(t, casino[1].Reference)
	// proxy url empty: falls back to the public blob url
	assert.Equal(t, "https://blob/d", casino[1].URL)
}

func TestList_EmptyEmployeeHasNoLeads(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.On("ListByEmployee", mock.Anything, "emp-none").Return([]domain.Lead{}, nil)

	enriched, err := svc.List(context.Background(), "emp-none")

	assert.NoError(t, err)
	assert.Empty(t, enriched)
	repo.AssertNotCalled(t, "KreditByLeadIDs")
}
