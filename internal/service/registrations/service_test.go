package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	registrationRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/registration"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	regs    map[string]domain.Registration
	deleted []string
}

func newFakeRepo(regs ...domain.Registration) *fakeRepo {
	f := &fakeRepo{regs: map[string]domain.Registration{}}
	for _, reg := range regs {
		f.regs[reg.ID] = reg
	}
	return f
}

func (f *fakeRepo) GetByIndustry(ctx context.Context, industry domain.Industry) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, reg := range f.regs {
		if reg.Industry == industry {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRepo) Search(ctx context.Context, applicant, phone string) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, reg := range f.regs {
		if reg.Applicant == applicant && reg.Phone == phone {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateContact(ctx context.Context, id, company, applicant, phone string) error {
	reg, ok := f.regs[id]
	if !ok {
		return registrationRepo.ErrRegistrationNotFound
	}
	reg.Company, reg.Applicant, reg.Phone = company, applicant, phone
	f.regs[id] = reg
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.regs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func sampleReg(id string, industry domain.Industry) domain.Registration {
	return domain.Registration{
		ID:        id,
		Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Industry:  industry,
		Company:   "한빛건설",
		Applicant: "김철수",
		Phone:     "010-1234-5678",
		CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestListByIndustry(t *testing.T) {
	svc := NewService(newFakeRepo(
		sampleReg("a", domain.IndustryConstruction),
		sampleReg("b", domain.IndustryManufacturing),
	), noopLogger{})

	t.Run("filters by industry", func(t *testing.T) {
		resp, err := svc.ListByIndustry(context.Background(), domain.IndustryConstruction)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "a", resp.Registrations[0].ID)
	})

	t.Run("unknown industry rejected", func(t *testing.T) {
		_, err := svc.ListByIndustry(context.Background(), "농업")
		assert.ErrorIs(t, err, ErrUnknownIndustry)
	})
}

func TestSearch(t *testing.T) {
	svc := NewService(newFakeRepo(sampleReg("a", domain.IndustryConstruction)), noopLogger{})

	t.Run("exact match on both fields", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchRequest{
			Applicant: "김철수",
			Phone:     "010-1234-5678",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("no match returns empty list", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), &models.SearchRequest{
			Applicant: "김철수",
			Phone:     "010-0000-0000",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("both fields required", func(t *testing.T) {
		_, err := svc.Search(context.Background(), &models.SearchRequest{Applicant: "김철수"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateContact(t *testing.T) {
	repo := newFakeRepo(sampleReg("a", domain.IndustryConstruction))
	svc := NewService(repo, noopLogger{})

	t.Run("updates contact fields", func(t *testing.T) {
		err := svc.UpdateContact(context.Background(), "a", &models.UpdateContactRequest{
			Company:   "새회사",
			Applicant: "박영수",
			Phone:     "010-1111-2222",
		})
		require.NoError(t, err)
		assert.Equal(t, "박영수", repo.regs["a"].Applicant)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.UpdateContact(context.Background(), "missing", &models.UpdateContactRequest{
			Company:   "새회사",
			Applicant: "박영수",
			Phone:     "010-1111-2222",
		})
		assert.ErrorIs(t, err, ErrRegistrationNotFound)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		err := svc.UpdateContact(context.Background(), "a", &models.UpdateContactRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(sampleReg("a", domain.IndustryConstruction))
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "a"))
	assert.NotContains(t, repo.regs, "a")

	// Repeating the delete is a no-op, not an error.
	assert.NoError(t, svc.Delete(context.Background(), "a"))
}
