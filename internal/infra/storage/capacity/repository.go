package capacity

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/pkg/psqlbuilder"
	"github.com/kmlee/safety-edu-booking/pkg/txmanager"
)

// DBExecutor is the database surface the repository needs.
type DBExecutor = txmanager.DBExecutor

// overrideColumns is the full column set of capacity_overrides; Get
// selects exactly these, so they must stay in lockstep with the
// migration.
var overrideColumns = []string{"industry", "seat_date", "total_seats", "created_at", "updated_at"}

// Repository persists capacity overrides in the capacity_overrides table,
// keyed by (industry, seat_date).
type Repository struct {
	db DBExecutor
}

// NewRepository creates a capacity-override repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert sets the total-seat override for the key, replacing any
// existing value. No lower bound against the booked count is enforced;
// remaining seats simply clamp at zero.
func (r *Repository) Upsert(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("capacity_overrides").
		Columns("industry", "seat_date", "total_seats").
		Values(industry, date, totalSeats).
		Suffix("ON CONFLICT (industry, seat_date) DO UPDATE SET total_seats = EXCLUDED.total_seats, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateIfAbsent stores an override only if the key has no local value
// yet (local-wins merge semantics). Returns true if a row was inserted.
func (r *Repository) CreateIfAbsent(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("capacity_overrides").
		Columns("industry", "seat_date", "total_seats").
		Values(industry, date, totalSeats).
		Suffix("ON CONFLICT (industry, seat_date) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - rows affected: %v", ErrExecQuery, err)
	}

	return inserted > 0, nil
}

// Get returns the override for one (industry, date) key.
func (r *Repository) Get(ctx context.Context, industry domain.Industry, date time.Time) (*domain.CapacityOverride, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("capacity_overrides").
		Where(squirrel.Eq{"industry": industry, "seat_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var override domain.CapacityOverride
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.Industry,
		&override.Date,
		&override.TotalSeats,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan override: %v", ErrScanRow, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// GetByIndustryRange returns all overrides of one industry within
// [from, to] as a key → total-seats map.
func (r *Repository) GetByIndustryRange(ctx context.Context, industry domain.Industry, from, to time.Time) (map[domain.OverrideKey]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("industry", "seat_date", "total_seats").
		From("capacity_overrides").
		Where(squirrel.Eq{"industry": industry}).
		Where(squirrel.GtOrEq{"seat_date": from}).
		Where(squirrel.LtOrEq{"seat_date": to}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIndustryRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIndustryRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrideMap(rows)
}

// GetAll returns every stored override as a key → total-seats map.
func (r *Repository) GetAll(ctx context.Context) (map[domain.OverrideKey]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("industry", "seat_date", "total_seats").
		From("capacity_overrides").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrideMap(rows)
}

func (r *Repository) scanOverrideMap(rows *sql.Rows) (map[domain.OverrideKey]int, error) {
	overrides := make(map[domain.OverrideKey]int)

	for rows.Next() {
		var industry domain.Industry
		var date time.Time
		var totalSeats int

		if err := rows.Scan(&industry, &date, &totalSeats); err != nil {
			return nil, fmt.Errorf("%w: scanOverrideMap - scan row: %v", ErrScanRow, err)
		}

		overrides[domain.NewOverrideKey(industry, date)] = totalSeats
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrideMap - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}
