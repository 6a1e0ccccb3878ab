package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"nutrisigno-api/internal/domain"
)

// ProfessionalRepository define el contrato de persistencia para las
// cuentas del panel de validación.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional domain.Professional) error
	GetByEmail(ctx context.Context, email string) (domain.Professional, error)
}

// PgProfessionalRepository implementa ProfessionalRepository usando pgxpool.
type PgProfessionalRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfessionalRepository(pool *pgxpool.Pool) *PgProfessionalRepository {
	return &PgProfessionalRepository{pool: pool}
}

func (r *PgProfessionalRepository) Create(ctx context.Context, professional domain.Professional) error {
	const query = `
		INSERT INTO professionals (id, email, nome, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query,
		professional.ID,
		professional.Email,
		professional.Nome,
		professional.PasswordHash,
		professional.CreatedAt,
	)
	return err
}

func (r *PgProfessionalRepository) GetByEmail(ctx context.Context, email string) (domain.Professional, error) {
	const query = `
		SELECT id, email, nome, password_hash, created_at
		FROM professionals
		WHERE email = $1
	`
	var p domain.Professional
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&p.ID,
		&p.Email,
		&p.Nome,
		&p.PasswordHash,
		&p.CreatedAt,
	)
	return p, err
}
