package capacity

import (
	"context"
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

type fakeRepo struct {
	upserts map[domain.OverrideKey]int
}

func (f *fakeRepo) Upsert(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) error {
	f.upserts[domain.NewOverrideKey(industry, date)] = totalSeats
	return nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{upserts: map[domain.OverrideKey]int{}}
	return NewService(repo, noopLogger{}), repo
}

func TestSetOverride(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	key := domain.NewOverrideKey(domain.IndustryConstruction, day)

	t.Run("upserts value", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.SetOverride(context.Background(), domain.IndustryConstruction, "2026-03-02", 45)
		require.NoError(t, err)
		assert.Equal(t, 45, repo.upserts[key])
	})

	t.Run("zero closes the session", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.SetOverride(context.Background(), domain.IndustryConstruction, "2026-03-02", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.upserts[key])
	})

	t.Run("negative rejected", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.SetOverride(context.Background(), domain.IndustryConstruction, "2026-03-02", -1)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
		assert.Empty(t, repo.upserts)
	})

	t.Run("unknown industry rejected", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.SetOverride(context.Background(), "농업", "2026-03-02", 10)
		assert.ErrorIs(t, err, ErrUnknownIndustry)
		assert.Empty(t, repo.upserts)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		svc, repo := newTestService()
		err := svc.SetOverride(context.Background(), domain.IndustryConstruction, "03/02/2026", 10)
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.Empty(t, repo.upserts)
	})
}
