package repository

import "github.com/jhoicas/Concesionario-api/internal/domain/entity"

// DealerRepository define el puerto de persistencia para Dealer (DIP).
// FindByID devuelve (nil, nil) cuando el id no existe.
type DealerRepository interface {
	FindByID(id int64) (*entity.Dealer, error)
	FindAll() ([]*entity.Dealer, error)
	Save(dealer *entity.Dealer) error
	// DeleteByID elimina el dealer y, por cascada del esquema, sus cars.
	DeleteByID(id int64) error
}
