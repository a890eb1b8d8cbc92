package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/integrations/cloudstore"
	"github.com/kmlee/safety-edu-booking/internal/syncbundle"
	mergeSnapshot "github.com/kmlee/safety-edu-booking/internal/usecase/merge_snapshot"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRegistrationRepo struct {
	regs []domain.Registration
}

func (f *fakeRegistrationRepo) GetAll(ctx context.Context) ([]domain.Registration, error) {
	return f.regs, nil
}

type fakeCapacityRepo struct {
	overrides map[domain.OverrideKey]int
}

func (f *fakeCapacityRepo) GetAll(ctx context.Context) (map[domain.OverrideKey]int, error) {
	return f.overrides, nil
}

type fakeMergeUseCase struct {
	received *domain.Snapshot
	response *mergeSnapshot.Response
}

func (f *fakeMergeUseCase) Execute(ctx context.Context, req *mergeSnapshot.Request) (*mergeSnapshot.Response, error) {
	f.received = req.Snapshot
	if f.response != nil {
		return f.response, nil
	}
	return &mergeSnapshot.Response{AddedRegistrations: len(req.Snapshot.Registrations)}, nil
}

type fakeCloudClient struct {
	doc      *cloudstore.Document
	fetchErr error
	storeErr error
	stored   *cloudstore.Document
}

func (f *fakeCloudClient) Fetch(ctx context.Context) (*cloudstore.Document, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.doc, nil
}

func (f *fakeCloudClient) Store(ctx context.Context, doc *cloudstore.Document) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = doc
	return nil
}

func localState() (*fakeRegistrationRepo, *fakeCapacityRepo) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &fakeRegistrationRepo{regs: []domain.Registration{{
			ID:        "local-1",
			Date:      day,
			Industry:  domain.IndustryConstruction,
			Company:   "한빛건설",
			Applicant: "김철수",
			Phone:     "010-1234-5678",
			CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		}}},
		&fakeCapacityRepo{overrides: map[domain.OverrideKey]int{
			domain.NewOverrideKey(domain.IndustryConstruction, day): 45,
		}}
}

func TestExportImportRoundTrip(t *testing.T) {
	regRepo, capRepo := localState()
	mergeUC := &fakeMergeUseCase{}
	svc := NewService(regRepo, capRepo, nil, mergeUC, noopLogger{})

	code, err := svc.ExportCode(context.Background())
	require.NoError(t, err)

	added, err := svc.ImportCode(context.Background(), code)
	require.NoError(t, err)

	assert.Equal(t, 1, added)
	require.NotNil(t, mergeUC.received)
	assert.Equal(t, regRepo.regs, mergeUC.received.Registrations)
	assert.Equal(t, capRepo.overrides, mergeUC.received.Overrides)
}

func TestImportCode_InvalidCode(t *testing.T) {
	regRepo, capRepo := localState()
	mergeUC := &fakeMergeUseCase{}
	svc := NewService(regRepo, capRepo, nil, mergeUC, noopLogger{})

	_, err := svc.ImportCode(context.Background(), "이건 코드가 아닙니다")

	assert.ErrorIs(t, err, syncbundle.ErrDecode)
	assert.Nil(t, mergeUC.received, "merge must not run on a malformed code")
}

func TestCloud_DisabledWithoutClient(t *testing.T) {
	regRepo, capRepo := localState()
	svc := NewService(regRepo, capRepo, nil, &fakeMergeUseCase{}, noopLogger{})

	assert.ErrorIs(t, svc.CloudPush(context.Background()), ErrCloudSyncDisabled)
	_, err := svc.CloudPull(context.Background())
	assert.ErrorIs(t, err, ErrCloudSyncDisabled)
}

func TestCloudPush(t *testing.T) {
	regRepo, capRepo := localState()
	client := &fakeCloudClient{}
	svc := NewService(regRepo, capRepo, client, &fakeMergeUseCase{}, noopLogger{})

	require.NoError(t, svc.CloudPush(context.Background()))

	require.NotNil(t, client.stored)
	require.Len(t, client.stored.Registrations, 1)
	assert.Equal(t, "local-1", client.stored.Registrations[0].ID)
	require.Len(t, client.stored.Overrides, 1)
	assert.Equal(t, 45, client.stored.Overrides[0].TotalSeats)
}

func TestCloudPull(t *testing.T) {
	t.Run("valid document is merged", func(t *testing.T) {
		regRepo, capRepo := localState()
		mergeUC := &fakeMergeUseCase{}
		client := &fakeCloudClient{doc: &cloudstore.Document{
			Registrations: []cloudstore.DocumentRegistration{{
				ID:        "remote-1",
				Date:      "2026-03-05",
				Industry:  string(domain.IndustryService),
				Company:   "미래서비스",
				Applicant: "이영희",
				Phone:     "010-9876-5432",
				CreatedAt: "2026-02-10T14:00:00Z",
			}},
		}}
		svc := NewService(regRepo, capRepo, client, mergeUC, noopLogger{})

		added, err := svc.CloudPull(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, added)
		require.NotNil(t, mergeUC.received)
		assert.Equal(t, "remote-1", mergeUC.received.Registrations[0].ID)
	})

	t.Run("transport failure leaves local state untouched", func(t *testing.T) {
		regRepo, capRepo := localState()
		mergeUC := &fakeMergeUseCase{}
		client := &fakeCloudClient{fetchErr: cloudstore.ErrTransport}
		svc := NewService(regRepo, capRepo, client, mergeUC, noopLogger{})

		_, err := svc.CloudPull(context.Background())

		assert.ErrorIs(t, err, cloudstore.ErrTransport)
		assert.Nil(t, mergeUC.received)
	})

	t.Run("invalid document rejected before merge", func(t *testing.T) {
		regRepo, capRepo := localState()
		mergeUC := &fakeMergeUseCase{}
		client := &fakeCloudClient{doc: &cloudstore.Document{
			Registrations: []cloudstore.DocumentRegistration{{
				ID:       "remote-1",
				Date:     "2026-03-05",
				Industry: "농업",
			}},
		}}
		svc := NewService(regRepo, capRepo, client, mergeUC, noopLogger{})

		_, err := svc.CloudPull(context.Background())

		assert.ErrorIs(t, err, cloudstore.ErrInvalidResponse)
		assert.Nil(t, mergeUC.received)
	})
}
