// services/tipopago/internal/repository/tipopago_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"carniceria-admin/services/tipopago/internal/models"
)

// ErrDuplicate is returned by Create when the description is already taken.
var ErrDuplicate = errors.New("duplicate description")

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type TipoPagoRepository struct {
	db *sql.DB
}

func NewTipoPagoRepository(db *sql.DB) *TipoPagoRepository {
	return &TipoPagoRepository{db: db}
}

func (r *TipoPagoRepository) Create(ctx context.Context, tp *models.TipoPago) error {
	query := `
		INSERT INTO tipo_pago (descripcion_tipo_pago, estado_tipo_pago, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id_tipo_pago
	`

	err := r.db.QueryRowContext(ctx, query,
		tp.Descripcion,
		tp.Estado,
		tp.CreatedAt,
		tp.UpdatedAt,
	).Scan(&tp.ID)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}

	return err
}

func (r *TipoPagoRepository) GetByID(ctx context.Context, id int) (*models.TipoPago, error) {
	query := `
		SELECT id_tipo_pago, descripcion_tipo_pago, estado_tipo_pago, created_at, updated_at
		FROM tipo_pago WHERE id_tipo_pago = $1
	`

	tp := &models.TipoPago{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tp.ID,
		&tp.Descripcion,
		&tp.Estado,
		&tp.CreatedAt,
		&tp.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return tp, err
}

// List returns the whole catalog ordered by id. Never nil on success.
func (r *TipoPagoRepository) List(ctx context.Context) ([]*models.TipoPago, error) {
	query := `
		SELECT id_tipo_pago, descripcion_tipo_pago, estado_tipo_pago, created_at, updated_at
		FROM tipo_pago
		ORDER BY id_tipo_pago ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.TipoPago{}
	for rows.Next() {
		tp := &models.TipoPago{}
		if err := rows.Scan(&tp.ID, &tp.Descripcion, &tp.Estado, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, tp)
	}

	return list, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
