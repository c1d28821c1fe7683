package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"academy-api/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) error
	ListByKind(ctx context.Context, kind string, limit int) ([]domain.ContactMessage, error)
}

type PgContactRepository struct {
	pool *pgxpool.Pool
}

func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

func (r *PgContactRepository) Create(ctx context.Context, msg domain.ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (id, kind, name, email, phone, course_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Kind,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.CourseID,
		msg.Body,
		msg.CreatedAt,
	)
	return err
}

func (r *PgContactRepository) ListByKind(ctx context.Context, kind string, limit int) ([]domain.ContactMessage, error) {
	const query = `
		SELECT id, kind, name, email, phone, course_id, body, created_at
		FROM contact_messages
		WHERE kind = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, query, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(
			&m.ID,
			&m.Kind,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.CourseID,
			&m.Body,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}
