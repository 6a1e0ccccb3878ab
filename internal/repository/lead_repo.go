package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"nutrisigno-api/internal/domain"
)

// LeadRepository define el contrato de persistencia para leads de la
// calculadora de grasa corporal.
type LeadRepository interface {
	Create(ctx context.Context, lead domain.BodyFatLead) (domain.BodyFatLead, error)
}

// PgLeadRepository implementa LeadRepository usando pgxpool.
type PgLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

func (r *PgLeadRepository) Create(ctx context.Context, lead domain.BodyFatLead) (domain.BodyFatLead, error) {
	const query = `
		INSERT INTO calculadora_leads (
			nome, celular, genero, resultado_gordura, altura_cm, cintura_cm, quadril_cm, abdomen_cm, pescoco_cm, origem, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING id, created_at
	`
	origem := lead.Origem
	if origem == "" {
		origem = domain.LeadOrigemCalculadora
	}

	saved := lead
	saved.Origem = origem
	err := r.pool.QueryRow(ctx, query,
		lead.Nome,
		lead.Celular,
		lead.Genero,
		lead.ResultadoGordura,
		lead.AlturaCm,
		lead.CinturaCm,
		lead.QuadrilCm,
		lead.AbdomenCm,
		lead.PescocoCm,
		origem,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return domain.BodyFatLead{}, err
	}
	return saved, nil
}
