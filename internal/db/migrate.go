package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes que construyen el esquema al arrancar. El orden
// importa: la extensión vector tiene que existir antes que pilares_vec.
var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	`CREATE TABLE IF NOT EXISTS patients (
		pac_id          UUID PRIMARY KEY,
		nome            TEXT,
		email           TEXT,
		telefone_norm   TEXT NOT NULL,
		data_nascimento DATE NOT NULL,
		respostas       JSONB NOT NULL DEFAULT '{}'::jsonb,
		pilares         JSONB NOT NULL DEFAULT '{}'::jsonb,
		pilares_vec     vector(6),
		status          TEXT NOT NULL DEFAULT 'pendente_validacao',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS patients_phone_dob_idx
		ON patients (telefone_norm, data_nascimento)`,
	`CREATE INDEX IF NOT EXISTS patients_status_idx ON patients (status)`,
	`CREATE TABLE IF NOT EXISTS professionals (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		nome          TEXT,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS calculadora_leads (
		id                BIGSERIAL PRIMARY KEY,
		nome              TEXT NOT NULL,
		celular           TEXT NOT NULL,
		genero            TEXT NOT NULL,
		resultado_gordura DOUBLE PRECISION NOT NULL,
		altura_cm         DOUBLE PRECISION,
		cintura_cm        DOUBLE PRECISION,
		quadril_cm        DOUBLE PRECISION,
		abdomen_cm        DOUBLE PRECISION,
		pescoco_cm        DOUBLE PRECISION,
		origem            TEXT NOT NULL DEFAULT 'calculadora_gordura_marinha',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate aplica el esquema mínimo que el servicio necesita para operar.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
