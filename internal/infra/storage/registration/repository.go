package registration

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

var registrationColumns = []string{
	"id",
	"industry",
	"edu_date",
	"company",
	"applicant",
	"phone",
	"created_at",
}

// Repository persists registrations in the registrations table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a registration repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new registration. The caller assigns the id and
// createdAt; the row is stored verbatim.
func (r *Repository) Create(ctx context.Context, reg *domain.Registration) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("registrations").
		Columns(registrationColumns...).
		Values(
			reg.ID,
			reg.Industry,
			reg.Date,
			reg.Company,
			reg.Applicant,
			reg.Phone,
			reg.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateIfAbsent inserts a registration unless a row with the same id
// already exists, in which case the existing row is kept untouched
// (local-wins merge semantics). Returns true if the row was inserted.
func (r *Repository) CreateIfAbsent(ctx context.Context, reg *domain.Registration) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("registrations").
		Columns(registrationColumns...).
		Values(
			reg.ID,
			reg.Industry,
			reg.Date,
			reg.Company,
			reg.Applicant,
			reg.Phone,
			reg.CreatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
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

// GetAll returns the full ledger, newest first.
func (r *Repository) GetAll(ctx context.Context) ([]domain.Registration, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From("registrations").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// GetByIndustry returns all registrations of one industry, newest first.
func (r *Repository) GetByIndustry(ctx context.Context, industry domain.Industry) ([]domain.Registration, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From("registrations").
		Where(squirrel.Eq{"industry": industry}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIndustry - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIndustry - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// CountByDateAndIndustry returns the number of registrations booked into
// the given session. Inside a transaction the rows are locked FOR UPDATE
// first so the admission check-then-insert cannot race.
func (r *Repository) CountByDateAndIndustry(ctx context.Context, date time.Time, industry domain.Industry) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if txmanager.IsInTransaction(ctx) {
		lockQuery, lockArgs, err := psqlbuilder.Select("id").
			From("registrations").
			Where(squirrel.Eq{"edu_date": date, "industry": industry}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: CountByDateAndIndustry - build lock query: %v", ErrBuildQuery, err)
		}
		lockRows, err := executor.QueryContext(ctx, lockQuery, lockArgs...)
		if err != nil {
			return 0, fmt.Errorf("%w: CountByDateAndIndustry - lock rows: %v", ErrExecQuery, err)
		}
		lockRows.Close()
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("registrations").
		Where(squirrel.Eq{"edu_date": date, "industry": industry}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByDateAndIndustry - build count query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDateAndIndustry - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetDailyCounts returns booked counts per session day for one industry
// within [from, to], keyed by the day formatted as YYYY-MM-DD. Days with
// no registrations are absent from the map.
func (r *Repository) GetDailyCounts(ctx context.Context, industry domain.Industry, from, to time.Time) (map[string]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("edu_date", "COUNT(*)").
		From("registrations").
		Where(squirrel.Eq{"industry": industry}).
		Where(squirrel.GtOrEq{"edu_date": from}).
		Where(squirrel.LtOrEq{"edu_date": to}).
		GroupBy("edu_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("%w: GetDailyCounts - scan row: %v", ErrScanRow, err)
		}
		counts[day.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDailyCounts - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Search returns registrations matching the applicant name and phone
// number exactly, newest first.
func (r *Repository) Search(ctx context.Context, applicant, phone string) ([]domain.Registration, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(registrationColumns...).
		From("registrations").
		Where(squirrel.Eq{"applicant": applicant, "phone": phone}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRegistrations(rows)
}

// UpdateContact replaces the mutable contact fields of a registration.
// Date, industry, id and createdAt are immutable after creation.
func (r *Repository) UpdateContact(ctx context.Context, id, company, applicant, phone string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("registrations").
		Set("company", company).
		Set("applicant", applicant).
		Set("phone", phone).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

// Delete removes a registration by id. Deleting an unknown id is a
// no-op, not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanRegistrations(rows *sql.Rows) ([]domain.Registration, error) {
	registrations := make([]domain.Registration, 0)

	for rows.Next() {
		var reg domain.Registration
		err := rows.Scan(
			&reg.ID,
			&reg.Industry,
			&reg.Date,
			&reg.Company,
			&reg.Applicant,
			&reg.Phone,
			&reg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRegistrations - scan row: %v", ErrScanRow, err)
		}

		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRegistrations - rows error: %v", ErrScanRow, err)
	}

	return registrations, nil
}
