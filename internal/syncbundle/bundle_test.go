package syncbundle

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

func sampleSnapshot() *domain.Snapshot {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Snapshot{
		Registrations: []domain.Registration{
			{
				ID:        "11111111-1111-1111-1111-111111111111",
				Date:      day,
				Industry:  domain.IndustryConstruction,
				Company:   "한빛건설",
				Applicant: "김철수",
				Phone:     "010-1234-5678",
				CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			},
		},
		Overrides: map[domain.OverrideKey]int{
			domain.NewOverrideKey(domain.IndustryManufacturing, day): 45,
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	code, err := Encode(original)
	require.NoError(t, err)
	assert.NotEmpty(t, code)

	decoded, err := Decode(code)
	require.NoError(t, err)

	assert.Equal(t, original.Registrations, decoded.Registrations)
	assert.Equal(t, original.Overrides, decoded.Overrides)
}

func TestEncodeEmptySnapshot(t *testing.T) {
	code, err := Encode(&domain.Snapshot{})
	require.NoError(t, err)

	decoded, err := Decode(code)
	require.NoError(t, err)
	assert.Empty(t, decoded.Registrations)
	assert.Empty(t, decoded.Overrides)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"not base64", "!!! 이건 코드가 아닙니다 !!!"},
		{"base64 of non-JSON", base64.StdEncoding.EncodeToString([]byte("not json"))},
		{"unsupported version", base64.StdEncoding.EncodeToString([]byte(`{"version":2,"registrations":[],"overrides":[]}`))},
		{"missing version", base64.StdEncoding.EncodeToString([]byte(`{"registrations":[],"overrides":[]}`))},
		{"registration without id", base64.StdEncoding.EncodeToString([]byte(
			`{"version":1,"registrations":[{"date":"2026-03-02","industry":"건설업","company":"a","applicant":"b","phone":"c","createdAt":"2026-02-01T09:00:00Z"}],"overrides":[]}`))},
		{"unknown industry", base64.StdEncoding.EncodeToString([]byte(
			`{"version":1,"registrations":[{"id":"x","date":"2026-03-02","industry":"농업","company":"a","applicant":"b","phone":"c","createdAt":"2026-02-01T09:00:00Z"}],"overrides":[]}`))},
		{"invalid date", base64.StdEncoding.EncodeToString([]byte(
			`{"version":1,"registrations":[{"id":"x","date":"03/02/2026","industry":"건설업","company":"a","applicant":"b","phone":"c","createdAt":"2026-02-01T09:00:00Z"}],"overrides":[]}`))},
		{"negative override", base64.StdEncoding.EncodeToString([]byte(
			`{"version":1,"registrations":[],"overrides":[{"industry":"건설업","date":"2026-03-02","totalSeats":-1}]}`))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snapshot, err := Decode(tc.code)
			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}
