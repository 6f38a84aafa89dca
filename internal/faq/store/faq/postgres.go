package faq

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"tipline/internal/faq/models"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
)

const uniqueViolation = "23505"

// PostgresFAQStore persists FAQ entries in PostgreSQL.
type PostgresFAQStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed FAQ store.
func NewPostgres(db *sql.DB) *PostgresFAQStore {
	return &PostgresFAQStore{db: db}
}

func (s *PostgresFAQStore) Create(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		faq.ID.String(), faq.Question, faq.Answer, nullString(faq.Category),
		faq.CreatedAt.Time(), faq.UpdatedAt.Time(),
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("faq %s: %w", faq.ID.String(), sentinel.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert faq: %w", err)
	}
	return nil
}

func (s *PostgresFAQStore) Update(ctx context.Context, faq *models.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		faq.ID.String(), faq.Question, faq.Answer, nullString(faq.Category), faq.UpdatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("faq %s: %w", faq.ID.String(), sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresFAQStore) Delete(ctx context.Context, faqID id.FAQID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, faqID.String())
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("faq %s: %w", faqID.String(), sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresFAQStore) FindByID(ctx context.Context, faqID id.FAQID) (*models.FAQ, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, question, answer, category, created_at, updated_at FROM faqs WHERE id = $1`,
		faqID.String())
	faq, err := scanFAQ(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("faq %s: %w", faqID.String(), sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select faq: %w", err)
	}
	return faq, nil
}

func (s *PostgresFAQStore) FindAll(ctx context.Context, category string) ([]models.FAQ, error) {
	query := `
		SELECT id, question, answer, category, created_at, updated_at
		FROM faqs
		WHERE $1 = '' OR category = $1
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("select faqs: %w", err)
	}
	defer rows.Close()

	faqs := make([]models.FAQ, 0)
	for rows.Next() {
		faq, err := scanFAQ(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, *faq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faqs: %w", err)
	}
	return faqs, nil
}

func scanFAQ(scan func(dest ...any) error) (*models.FAQ, error) {
	var (
		faq       models.FAQ
		rawID     string
		category  sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)
	if err := scan(&rawID, &faq.Question, &faq.Answer, &category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if faq.ID, err = id.ParseFAQID(rawID); err != nil {
		return nil, err
	}
	faq.Category = category.String
	if faq.CreatedAt, err = id.UTCInstantFrom(createdAt); err != nil {
		return nil, err
	}
	if faq.UpdatedAt, err = id.UTCInstantFrom(updatedAt); err != nil {
		return nil, err
	}
	return &faq, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
