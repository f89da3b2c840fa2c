package usecase

import (
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/domain/repository"
)

// DealerUseCase fachada CRUD para Dealers. Los lookups por id ausente fallan
// con not-found de dominio, igual que el camino de Car.
type DealerUseCase struct {
	repo repository.DealerRepository
}

// NewDealerUseCase construye el caso de uso.
func NewDealerUseCase(repo repository.DealerRepository) *DealerUseCase {
	return &DealerUseCase{repo: repo}
}

// GetAll devuelve todos los dealers.
func (uc *DealerUseCase) GetAll() ([]dto.DealerResponse, error) {
	dealers, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DealerResponse, 0, len(dealers))
	for _, d := range dealers {
		out = append(out, dto.DealerResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// GetByID devuelve el Dealer o un not-found de dominio.
func (uc *DealerUseCase) GetByID(id int64) (*dto.DealerResponse, error) {
	dealer, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, domain.NewDealerNotFound(id)
	}
	return &dto.DealerResponse{ID: dealer.ID, Name: dealer.Name}, nil
}

// Create persiste un dealer nuevo con el nombre dado.
func (uc *DealerUseCase) Create(in dto.DealerRequest) (*dto.DealerResponse, error) {
	dealer := &entity.Dealer{}
	if in.Name != nil {
		dealer.Name = *in.Name
	}
	if err := uc.repo.Save(dealer); err != nil {
		return nil, err
	}
	return &dto.DealerResponse{ID: dealer.ID, Name: dealer.Name}, nil
}

// Update mezcla únicamente el nombre cuando viene en el payload; un payload
// sin nombre es un no-op que devuelve el dealer almacenado.
func (uc *DealerUseCase) Update(id int64, in dto.DealerRequest) (*dto.DealerResponse, error) {
	dealer, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, domain.NewDealerNotFound(id)
	}
	if in.Name != nil {
		dealer.Name = *in.Name
		if err := uc.repo.Save(dealer); err != nil {
			return nil, err
		}
	}
	return &dto.DealerResponse{ID: dealer.ID, Name: dealer.Name}, nil
}

// Delete verifica existencia y elimina; los cars del dealer caen en cascada.
func (uc *DealerUseCase) Delete(id int64) error {
	dealer, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if dealer == nil {
		return domain.NewDealerNotFound(id)
	}
	return uc.repo.DeleteByID(id)
}
