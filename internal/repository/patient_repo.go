package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"nutrisigno-api/internal/domain"
	"nutrisigno-api/internal/scoring"
)

// PatientRepository define el contrato de persistencia para pacientes.
type PatientRepository interface {
	Upsert(ctx context.Context, patient domain.Patient) (domain.Patient, error)
	GetByPacID(ctx context.Context, pacID uuid.UUID) (domain.Patient, error)
	GetByPhoneDob(ctx context.Context, phoneNorm string, dob time.Time) (domain.Patient, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Patient, error)
	UpdateStatus(ctx context.Context, pacID uuid.UUID, status string) error
	SimilarByPillars(ctx context.Context, pacID uuid.UUID, k int) ([]domain.SimilarPatient, error)
}

// PgPatientRepository implementa PatientRepository usando pgxpool.
type PgPatientRepository struct {
	pool *pgxpool.Pool
}

func NewPgPatientRepository(pool *pgxpool.Pool) *PgPatientRepository {
	return &PgPatientRepository{pool: pool}
}

// Upsert inserta o actualiza por (telefone_norm, data_nascimento), la clave
// natural del formulario. Un reenvío del mismo paciente conserva su pac_id
// y su status; nombre y email solo se pisan cuando llegan no vacíos.
func (r *PgPatientRepository) Upsert(ctx context.Context, patient domain.Patient) (domain.Patient, error) {
	const query = `
		INSERT INTO patients (
			pac_id, nome, email, telefone_norm, data_nascimento, respostas, pilares, pilares_vec, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (telefone_norm, data_nascimento) DO UPDATE SET
			nome        = COALESCE(NULLIF(EXCLUDED.nome, ''), patients.nome),
			email       = COALESCE(NULLIF(EXCLUDED.email, ''), patients.email),
			respostas   = EXCLUDED.respostas,
			pilares     = EXCLUDED.pilares,
			pilares_vec = EXCLUDED.pilares_vec,
			updated_at  = now()
		RETURNING pac_id, status, created_at, updated_at
	`

	var vec any
	if values, ok := patient.Pilares.Vector(); ok {
		vec = pgvector.NewVector(values)
	}

	pacID := patient.PacID
	if pacID == uuid.Nil {
		pacID = uuid.New()
	}
	status := patient.Status
	if status == "" {
		status = domain.StatusPendingValidation
	}

	saved := patient
	err := r.pool.QueryRow(ctx, query,
		pacID,
		patient.Nome,
		patient.Email,
		patient.TelefoneNorm,
		patient.DataNascimento,
		patient.Respostas,
		pilaresJSON(patient.Pilares),
		vec,
		status,
	).Scan(
		&saved.PacID,
		&saved.Status,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return domain.Patient{}, err
	}
	return saved, nil
}

func (r *PgPatientRepository) GetByPacID(ctx context.Context, pacID uuid.UUID) (domain.Patient, error) {
	const query = `
		SELECT pac_id, nome, email, telefone_norm, data_nascimento, respostas, pilares, status, created_at, updated_at
		FROM patients
		WHERE pac_id = $1
	`
	return scanPatient(r.pool.QueryRow(ctx, query, pacID))
}

func (r *PgPatientRepository) GetByPhoneDob(ctx context.Context, phoneNorm string, dob time.Time) (domain.Patient, error) {
	const query = `
		SELECT pac_id, nome, email, telefone_norm, data_nascimento, respostas, pilares, status, created_at, updated_at
		FROM patients
		WHERE telefone_norm = $1 AND data_nascimento = $2
		LIMIT 1
	`
	return scanPatient(r.pool.QueryRow(ctx, query, phoneNorm, dob))
}

func (r *PgPatientRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Patient, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
		SELECT pac_id, nome, email, telefone_norm, data_nascimento, respostas, pilares, status, created_at, updated_at
		FROM patients
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PgPatientRepository) UpdateStatus(ctx context.Context, pacID uuid.UUID, status string) error {
	const query = `
		UPDATE patients
		SET status = $2, updated_at = now()
		WHERE pac_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, pacID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SimilarByPillars devuelve los k pacientes más cercanos por distancia
// coseno entre vectores de pilares. Un paciente sin vector (puntajes
// incompletos) no tiene vecinos.
func (r *PgPatientRepository) SimilarByPillars(ctx context.Context, pacID uuid.UUID, k int) ([]domain.SimilarPatient, error) {
	if k <= 0 {
		k = 5
	}
	const refQuery = `
		SELECT pilares_vec
		FROM patients
		WHERE pac_id = $1 AND pilares_vec IS NOT NULL
	`
	var ref pgvector.Vector
	err := r.pool.QueryRow(ctx, refQuery, pacID).Scan(&ref)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT pac_id, nome, pilares_vec <=> $2 AS distance
		FROM patients
		WHERE pac_id <> $1 AND pilares_vec IS NOT NULL
		ORDER BY pilares_vec <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, pacID, ref, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var neighbors []domain.SimilarPatient
	for rows.Next() {
		var n domain.SimilarPatient
		var nome sql.NullString
		if err := rows.Scan(&n.PacID, &nome, &n.Distance); err != nil {
			return nil, err
		}
		n.Nome = nome.String
		neighbors = append(neighbors, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return neighbors, nil
}

// pilaresJSON aplana los puntajes al mapa que se guarda en JSONB.
func pilaresJSON(scores scoring.PillarScores) map[string]*int {
	out := make(map[string]*int, len(scores))
	for pillar, value := range scores {
		out[string(pillar)] = value
	}
	return out
}

func scanPatient(row pgx.Row) (domain.Patient, error) {
	var (
		p          domain.Patient
		nome       sql.NullString
		email      sql.NullString
		rawPilares map[string]any
	)
	err := row.Scan(
		&p.PacID,
		&nome,
		&email,
		&p.TelefoneNorm,
		&p.DataNascimento,
		&p.Respostas,
		&rawPilares,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return domain.Patient{}, err
	}
	p.Nome = nome.String
	p.Email = email.String
	// Lo persistido pasa siempre por el saneador antes de volver al dominio.
	p.Pilares = scoring.SanitizeScores(rawPilares)
	return p, nil
}
