package tip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
)

const uniqueViolation = "23505"

// PostgresTipStore persists tips in PostgreSQL.
type PostgresTipStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed tip repository.
func NewPostgres(db *sql.DB) *PostgresTipStore {
	return &PostgresTipStore{db: db}
}

func (s *PostgresTipStore) Create(ctx context.Context, tip *models.Tip) error {
	snap := tip.Snapshot()
	query := `
		INSERT INTO tips (id, type, status, title, content, location_id, created_by, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		snap.ID.String(), string(snap.Type), string(snap.Status),
		snap.Title, snap.Content, nullString(snap.LocationID),
		snap.CreatedBy.String(), nullInstant(snap.ExpiresAt),
		snap.CreatedAt.Time(), snap.UpdatedAt.Time(),
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("tip %s: %w", snap.ID.String(), sentinel.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert tip: %w", err)
	}
	return nil
}

func (s *PostgresTipStore) Update(ctx context.Context, tip *models.Tip) error {
	snap := tip.Snapshot()
	query := `
		UPDATE tips
		SET status = $2, title = $3, content = $4, expires_at = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		snap.ID.String(), string(snap.Status), snap.Title, snap.Content,
		nullInstant(snap.ExpiresAt), snap.UpdatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("update tip: %w", err)
	}
	return requireRow(result, snap.ID)
}

func (s *PostgresTipStore) Delete(ctx context.Context, tipID id.TipID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tips WHERE id = $1`, tipID.String())
	if err != nil {
		return fmt.Errorf("delete tip: %w", err)
	}
	return requireRow(result, tipID)
}

func (s *PostgresTipStore) FindByID(ctx context.Context, tipID id.TipID) (*models.Tip, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM tips WHERE id = $1`, tipID.String())
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select tip: %w", err)
	}
	return models.LoadTip(snap)
}

func requireRow(result sql.Result, tipID id.TipID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	return nil
}

// PostgresTipQuery serves read-model projections from PostgreSQL.
type PostgresTipQuery struct {
	db *sql.DB
}

// NewPostgresQuery constructs the read side over the same database.
func NewPostgresQuery(db *sql.DB) *PostgresTipQuery {
	return &PostgresTipQuery{db: db}
}

const selectColumns = `SELECT id, type, status, title, content, location_id, created_by, expires_at, created_at, updated_at`

// FindAll lists projections matching the filter, newest first, with the total
// match count before paging. A Limit of zero disables paging.
func (q *PostgresTipQuery) FindAll(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error) {
	where := ` WHERE ($1 = '' OR type = $1)
		AND ($2 = '' OR status = $2)
		AND ($3 = '' OR location_id = $3)
		AND ($4 = '' OR title ILIKE '%' || $4 || '%' OR content ILIKE '%' || $4 || '%')`
	args := []any{string(filter.Type), string(filter.Status), filter.LocationID, filter.Search}

	var total int
	if err := q.db.QueryRowContext(ctx, `SELECT count(*) FROM tips`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tips: %w", err)
	}

	query := selectColumns + ` FROM tips` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select tips: %w", err)
	}
	defer rows.Close()

	projections := make([]models.TipProjection, 0)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan tip: %w", err)
		}
		projections = append(projections, projectionFromSnapshot(snap))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tips: %w", err)
	}
	return projections, total, nil
}

func (q *PostgresTipQuery) FindByID(ctx context.Context, tipID id.TipID) (*models.TipProjection, error) {
	row := q.db.QueryRowContext(ctx, selectColumns+` FROM tips WHERE id = $1`, tipID.String())
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select tip: %w", err)
	}
	p := projectionFromSnapshot(snap)
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (models.TipSnapshot, error) {
	var (
		snap       models.TipSnapshot
		rawID      string
		rawType    string
		rawStatus  string
		locationID sql.NullString
		createdBy  string
		expiresAt  sql.NullTime
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := row.Scan(&rawID, &rawType, &rawStatus, &snap.Title, &snap.Content,
		&locationID, &createdBy, &expiresAt, &createdAt, &updatedAt)
	if err != nil {
		return models.TipSnapshot{}, err
	}

	if snap.ID, err = id.ParseTipID(rawID); err != nil {
		return models.TipSnapshot{}, err
	}
	if snap.CreatedBy, err = id.ParseUserID(createdBy); err != nil {
		return models.TipSnapshot{}, err
	}
	snap.Type = models.TipType(rawType)
	snap.Status = models.TipStatus(rawStatus)
	snap.LocationID = locationID.String
	if snap.CreatedAt, err = id.UTCInstantFrom(createdAt); err != nil {
		return models.TipSnapshot{}, err
	}
	if snap.UpdatedAt, err = id.UTCInstantFrom(updatedAt); err != nil {
		return models.TipSnapshot{}, err
	}
	if expiresAt.Valid {
		instant, err := id.UTCInstantFrom(expiresAt.Time)
		if err != nil {
			return models.TipSnapshot{}, err
		}
		snap.ExpiresAt = &instant
	}
	return snap, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInstant(i *id.UTCInstant) sql.NullTime {
	if i == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: i.Time(), Valid: true}
}
