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

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL.
// Cada lectura trae el dealer del car con un LEFT JOIN (la FK es nullable).
type CarRepo struct {
	pool *pgxpool.Pool
}

// NewCarRepository construye el adaptador de persistencia para cars.
func NewCarRepository(pool *pgxpool.Pool) *CarRepo {
	return &CarRepo{pool: pool}
}

const carSelect = `
	SELECT c.id, c.brand, c.model, c.color, c.reg_number, c.image_url, c.year, c.car_price,
	       c.dealer, d.dealer_name
	FROM cars c
	LEFT JOIN dealers d ON d.dealer_id = c.dealer`

// FindByID obtiene un car por id; (nil, nil) si no existe.
func (r *CarRepo) FindByID(id int64) (*entity.Car, error) {
	row := r.pool.QueryRow(context.Background(), carSelect+` WHERE c.id = $1`, id)
	car, err := scanCar(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car by id: %w", err)
	}
	return car, nil
}

// FindAll devuelve todos los cars con su dealer.
func (r *CarRepo) FindAll() ([]*entity.Car, error) {
	rows, err := r.pool.Query(context.Background(), carSelect+` ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, car)
	}
	return list, rows.Err()
}

// Save inserta (id cero, asigna el id generado) o sobreescribe la fila completa.
func (r *CarRepo) Save(car *entity.Car) error {
	ctx := context.Background()
	if car.ID == 0 {
		query := `
			INSERT INTO cars (brand, model, color, reg_number, image_url, year, car_price, dealer)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`
		err := r.pool.QueryRow(ctx, query,
			car.Brand, car.Model, car.Color, car.RegNumber, car.ImageURL, car.Year, car.Price, car.DealerID,
		).Scan(&car.ID)
		if err != nil {
			return fmt.Errorf("insert car: %w", err)
		}
		return nil
	}
	query := `
		UPDATE cars
		SET brand = $2, model = $3, color = $4, reg_number = $5, image_url = $6,
		    year = $7, car_price = $8, dealer = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		car.ID, car.Brand, car.Model, car.Color, car.RegNumber, car.ImageURL, car.Year, car.Price, car.DealerID,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	return nil
}

// DeleteByID elimina un car por id.
func (r *CarRepo) DeleteByID(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func scanCar(row pgx.Row) (*entity.Car, error) {
	var c entity.Car
	var dealerName *string
	err := row.Scan(
		&c.ID, &c.Brand, &c.Model, &c.Color, &c.RegNumber, &c.ImageURL, &c.Year, &c.Price,
		&c.DealerID, &dealerName,
	)
	if err != nil {
		return nil, err
	}
	if c.DealerID != nil && dealerName != nil {
		c.Dealer = &entity.Dealer{ID: *c.DealerID, Name: *dealerName}
	}
	return &c, nil
}
