package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/domain/repository"
)

var _ repository.DealerRepository = (*DealerRepo)(nil)

// DealerRepo implementación del puerto DealerRepository sobre PostgreSQL.
type DealerRepo struct {
	pool *pgxpool.Pool
}

// NewDealerRepository construye el adaptador de persistencia para dealers.
func NewDealerRepository(pool *pgxpool.Pool) *DealerRepo {
	return &DealerRepo{pool: pool}
}

// FindByID obtiene un dealer por id; (nil, nil) si no existe.
func (r *DealerRepo) FindByID(id int64) (*entity.Dealer, error) {
	var d entity.Dealer
	err := r.pool.QueryRow(context.Background(),
		`SELECT dealer_id, dealer_name FROM dealers WHERE dealer_id = $1`, id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dealer by id: %w", err)
	}
	return &d, nil
}

// FindAll devuelve todos los dealers.
func (r *DealerRepo) FindAll() ([]*entity.Dealer, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT dealer_id, dealer_name FROM dealers ORDER BY dealer_id`)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dealer
	for rows.Next() {
		var d entity.Dealer
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan dealer: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Save inserta (id cero, asigna el id generado) o actualiza el nombre.
func (r *DealerRepo) Save(dealer *entity.Dealer) error {
	ctx := context.Background()
	if dealer.ID == 0 {
		err := r.pool.QueryRow(ctx,
			`INSERT INTO dealers (dealer_name) VALUES ($1) RETURNING dealer_id`, dealer.Name,
		).Scan(&dealer.ID)
		if err != nil {
			return fmt.Errorf("insert dealer: %w", err)
		}
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE dealers SET dealer_name = $2 WHERE dealer_id = $1`, dealer.ID, dealer.Name)
	if err != nil {
		return fmt.Errorf("update dealer: %w", err)
	}
	return nil
}

// DeleteByID elimina el dealer; los cars asociados caen por la FK ON DELETE CASCADE.
func (r *DealerRepo) DeleteByID(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM dealers WHERE dealer_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dealer: %w", err)
	}
	return nil
}
