package create_registration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	capacityRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/capacity"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRegistrationRepo struct {
	count   int
	created []*domain.Registration
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	f.created = append(f.created, reg)
	return nil
}

func (f *fakeRegistrationRepo) CountByDateAndIndustry(ctx context.Context, date time.Time, industry domain.Industry) (int, error) {
	return f.count, nil
}

type fakeCapacityRepo struct {
	override *domain.CapacityOverride
}

func (f *fakeCapacityRepo) Get(ctx context.Context, industry domain.Industry, date time.Time) (*domain.CapacityOverride, error) {
	if f.override == nil {
		return nil, capacityRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(regRepo *fakeRegistrationRepo, capRepo *fakeCapacityRepo) *UseCase {
	uc := NewUseCase(regRepo, capRepo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Industry:  domain.IndustryConstruction,
		Date:      testNow.AddDate(0, 0, 1),
		Company:   "한빛건설",
		Applicant: "김철수",
		Phone:     "010-1234-5678",
	}
}

func TestExecute_Success(t *testing.T) {
	regRepo := &fakeRegistrationRepo{count: 0}
	uc := newTestUseCase(regRepo, &fakeCapacityRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testNow, resp.CreatedAt)
	assert.Equal(t, domain.DefaultSeatCapacity-1, resp.RemainingSeats)
	require.Len(t, regRepo.created, 1)
	assert.Equal(t, resp.ID, regRepo.created[0].ID)
}

func TestExecute_UniqueIDs(t *testing.T) {
	regRepo := &fakeRegistrationRepo{}
	uc := newTestUseCase(regRepo, &fakeCapacityRepo{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_SessionFull(t *testing.T) {
	regRepo := &fakeRegistrationRepo{count: domain.DefaultSeatCapacity}
	uc := newTestUseCase(regRepo, &fakeCapacityRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSessionFull)
	assert.Empty(t, regRepo.created)
}

func TestExecute_OverrideControlsCapacity(t *testing.T) {
	t.Run("raised override admits beyond default", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{count: domain.DefaultSeatCapacity}
		capRepo := &fakeCapacityRepo{override: &domain.CapacityOverride{TotalSeats: 50}}
		uc := newTestUseCase(regRepo, capRepo)

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, 50-domain.DefaultSeatCapacity-1, resp.RemainingSeats)
	})

	t.Run("zero override rejects everyone", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{count: 0}
		capRepo := &fakeCapacityRepo{override: &domain.CapacityOverride{TotalSeats: 0}}
		uc := newTestUseCase(regRepo, capRepo)

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrSessionFull)
		assert.Empty(t, regRepo.created)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeRegistrationRepo{}, &fakeCapacityRepo{})

	t.Run("unknown industry", func(t *testing.T) {
		req := validRequest()
		req.Industry = "농업"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnknownIndustry)
	})

	t.Run("whitespace-only applicant", func(t *testing.T) {
		req := validRequest()
		req.Applicant = "   "
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("length caps count characters, not bytes", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		ucLocal := newTestUseCase(regRepo, &fakeCapacityRepo{})
		req := validRequest()
		// 100 Korean characters are 300 bytes; well under the 200-character cap.
		req.Company = strings.Repeat("한", 100)
		_, err := ucLocal.Execute(context.Background(), req)
		assert.NoError(t, err)

		req = validRequest()
		req.Company = strings.Repeat("한", domain.MaxCompanyLength+1)
		_, err = ucLocal.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("past date", func(t *testing.T) {
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("today is accepted", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		ucToday := newTestUseCase(regRepo, &fakeCapacityRepo{})
		req := validRequest()
		req.Date = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := ucToday.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_TrimsContactFields(t *testing.T) {
	regRepo := &fakeRegistrationRepo{}
	uc := newTestUseCase(regRepo, &fakeCapacityRepo{})

	req := validRequest()
	req.Company = "  한빛건설  "
	req.Applicant = " 김철수 "

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "한빛건설", resp.Company)
	assert.Equal(t, "김철수", resp.Applicant)
}
