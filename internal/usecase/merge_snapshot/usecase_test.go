package merge_snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRegistrationRepo struct {
	existing map[string]domain.Registration
	failOn   string // id that triggers an error
}

func (f *fakeRegistrationRepo) CreateIfAbsent(ctx context.Context, reg *domain.Registration) (bool, error) {
	if reg.ID == f.failOn {
		return false, errors.New("insert failed")
	}
	if _, ok := f.existing[reg.ID]; ok {
		return false, nil
	}
	f.existing[reg.ID] = *reg
	return true, nil
}

type fakeCapacityRepo struct {
	existing map[domain.OverrideKey]int
}

func (f *fakeCapacityRepo) CreateIfAbsent(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) (bool, error) {
	key := domain.NewOverrideKey(industry, date)
	if _, ok := f.existing[key]; ok {
		return false, nil
	}
	f.existing[key] = totalSeats
	return true, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func foreignReg(id string) domain.Registration {
	return domain.Registration{
		ID:        id,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Industry:  domain.IndustryService,
		Company:   "미래서비스",
		Applicant: "이영희",
		Phone:     "010-9876-5432",
		CreatedAt: time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC),
	}
}

func newTestSetup(existingRegs map[string]domain.Registration, existingOverrides map[domain.OverrideKey]int) (*UseCase, *fakeRegistrationRepo, *fakeCapacityRepo) {
	if existingRegs == nil {
		existingRegs = map[string]domain.Registration{}
	}
	if existingOverrides == nil {
		existingOverrides = map[domain.OverrideKey]int{}
	}
	regRepo := &fakeRegistrationRepo{existing: existingRegs}
	capRepo := &fakeCapacityRepo{existing: existingOverrides}
	return NewUseCase(regRepo, capRepo, fakeTxManager{}, noopLogger{}), regRepo, capRepo
}

func TestExecute_AddsUnknownEntries(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	uc, regRepo, capRepo := newTestSetup(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{Snapshot: &domain.Snapshot{
		Registrations: []domain.Registration{foreignReg("a"), foreignReg("b")},
		Overrides: map[domain.OverrideKey]int{
			domain.NewOverrideKey(domain.IndustryService, day): 40,
		},
	}})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.AddedRegistrations)
	assert.Equal(t, 1, resp.AddedOverrides)
	assert.Len(t, regRepo.existing, 2)
	assert.Len(t, capRepo.existing, 1)
}

func TestExecute_LocalWins(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	key := domain.NewOverrideKey(domain.IndustryService, day)

	local := foreignReg("a")
	local.Applicant = "로컬신청자"

	uc, regRepo, capRepo := newTestSetup(
		map[string]domain.Registration{"a": local},
		map[domain.OverrideKey]int{key: 10},
	)

	resp, err := uc.Execute(context.Background(), &Request{Snapshot: &domain.Snapshot{
		Registrations: []domain.Registration{foreignReg("a")},
		Overrides:     map[domain.OverrideKey]int{key: 50},
	}})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.AddedRegistrations)
	assert.Equal(t, 0, resp.AddedOverrides)
	assert.Equal(t, "로컬신청자", regRepo.existing["a"].Applicant)
	assert.Equal(t, 10, capRepo.existing[key])
}

func TestExecute_EmptyForeignSnapshotChangesNothing(t *testing.T) {
	local := foreignReg("a")
	uc, regRepo, capRepo := newTestSetup(map[string]domain.Registration{"a": local}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Snapshot: &domain.Snapshot{}})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.AddedRegistrations)
	assert.Equal(t, 0, resp.AddedOverrides)
	assert.Equal(t, local, regRepo.existing["a"])
	assert.Empty(t, capRepo.existing)
}

func TestExecute_Idempotent(t *testing.T) {
	uc, _, _ := newTestSetup(nil, nil)
	snapshot := &domain.Snapshot{Registrations: []domain.Registration{foreignReg("a")}}

	first, err := uc.Execute(context.Background(), &Request{Snapshot: snapshot})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Snapshot: snapshot})
	require.NoError(t, err)

	assert.Equal(t, 1, first.AddedRegistrations)
	assert.Equal(t, 0, second.AddedRegistrations)
}

func TestExecute_NilSnapshot(t *testing.T) {
	uc, _, _ := newTestSetup(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	regRepo := &fakeRegistrationRepo{existing: map[string]domain.Registration{}, failOn: "bad"}
	capRepo := &fakeCapacityRepo{existing: map[domain.OverrideKey]int{}}
	uc := NewUseCase(regRepo, capRepo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Snapshot: &domain.Snapshot{
		Registrations: []domain.Registration{foreignReg("bad")},
	}})

	assert.ErrorIs(t, err, ErrInternal)
}
