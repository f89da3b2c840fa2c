package repository

import "github.com/jhoicas/Concesionario-api/internal/domain/entity"

// CarRepository define el puerto de persistencia para Car (DIP).
// FindByID devuelve (nil, nil) cuando el id no existe.
type CarRepository interface {
	FindByID(id int64) (*entity.Car, error)
	FindAll() ([]*entity.Car, error)
	// Save inserta si car.ID es cero (y asigna el id generado) o sobreescribe
	// la fila completa si no lo es.
	Save(car *entity.Car) error
	DeleteByID(id int64) error
}
