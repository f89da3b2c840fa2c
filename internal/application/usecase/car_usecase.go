package usecase

import (
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/domain/repository"
)

// CarUseCase fachada CRUD para Cars: valida y delega al puerto de persistencia.
type CarUseCase struct {
	repo repository.CarRepository
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(repo repository.CarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

// GetAll devuelve la colección completa, sin paginación.
func (uc *CarUseCase) GetAll() ([]dto.CarResponse, error) {
	cars, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, *toCarResponse(c))
	}
	return out, nil
}

// GetByID devuelve el Car o un not-found de dominio.
func (uc *CarUseCase) GetByID(id int64) (*dto.CarResponse, error) {
	car, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.NewCarNotFound(id)
	}
	return toCarResponse(car), nil
}

// Create valida la regla de negocio del año y persiste. Devuelve el registro
// almacenado con su id generado.
func (uc *CarUseCase) Create(in dto.CarRequest) (*dto.CarResponse, error) {
	if in.Year < entity.MinCarYear {
		return nil, domain.ErrCarYear
	}
	car := toCarEntity(in)
	if err := uc.repo.Save(car); err != nil {
		return nil, err
	}
	return uc.GetByID(car.ID)
}

// Update verifica que el id exista y luego persiste el payload entrante bajo
// ese id. La fila se sobreescribe completa: el registro existente se consulta
// pero no se mezcla, y los campos ausentes quedan en su valor cero.
func (uc *CarUseCase) Update(id int64, in dto.CarRequest) (*dto.CarResponse, error) {
	existing, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewCarNotFound(id)
	}
	car := toCarEntity(in)
	car.ID = id
	if err := uc.repo.Save(car); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete verifica existencia y elimina.
func (uc *CarUseCase) Delete(id int64) error {
	car, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.NewCarNotFound(id)
	}
	return uc.repo.DeleteByID(id)
}

func toCarEntity(in dto.CarRequest) *entity.Car {
	return &entity.Car{
		Brand:     in.Brand,
		Model:     in.Model,
		Color:     in.Color,
		RegNumber: in.RegNumber,
		ImageURL:  in.ImageURL,
		Year:      in.Year,
		Price:     in.Price,
		DealerID:  in.DealerID,
	}
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CarResponse{
		ID:        c.ID,
		Brand:     c.Brand,
		Model:     c.Model,
		Color:     c.Color,
		RegNumber: c.RegNumber,
		ImageURL:  c.ImageURL,
		Year:      c.Year,
		Price:     c.Price,
	}
	if c.Dealer != nil {
		resp.Dealer = &dto.DealerResponse{ID: c.Dealer.ID, Name: c.Dealer.Name}
	}
	return resp
}
