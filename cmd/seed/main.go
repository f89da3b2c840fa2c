// seed puebla la base con los datos de demostración del catálogo: dos dealers
// y un car para cada uno. Es idempotente a nivel de nombre de dealer: si ya
// existe un dealer con el mismo nombre no vuelve a insertarlo.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Concesionario-api/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	dealerRepo := postgres.NewDealerRepository(pool)
	carRepo := postgres.NewCarRepository(pool)

	existing, err := dealerRepo.FindAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar dealers: %v\n", err)
		os.Exit(1)
	}
	byName := make(map[string]*entity.Dealer, len(existing))
	for _, d := range existing {
		byName[d.Name] = d
	}

	seedDealer := func(name string) (*entity.Dealer, error) {
		if d, ok := byName[name]; ok {
			fmt.Printf("dealer %q ya existe (id %d)\n", name, d.ID)
			return d, nil
		}
		d := &entity.Dealer{Name: name}
		if err := dealerRepo.Save(d); err != nil {
			return nil, err
		}
		fmt.Printf("dealer %q creado (id %d)\n", name, d.ID)
		return d, nil
	}

	toyota, err := seedDealer("Toyota Dealership")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed dealer: %v\n", err)
		os.Exit(1)
	}
	volvo, err := seedDealer("Volvo Dealership")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed dealer: %v\n", err)
		os.Exit(1)
	}

	cars := []*entity.Car{
		{
			Brand:     "Toyota",
			Model:     "Camry",
			Color:     "red",
			RegNumber: "123ABC",
			ImageURL:  "https://www.capovalleytoyota.com/new-vehicles/camry/",
			Year:      2025,
			Price:     decimal.NewFromInt(35000),
			DealerID:  &toyota.ID,
		},
		{
			Brand:     "Volvo",
			Model:     "XC60",
			Color:     "blue",
			RegNumber: "098ZYX",
			ImageURL:  "https://www.cardekho.com/Volvo/Volvo_XC60/pictures",
			Year:      2017,
			Price:     decimal.NewFromInt(50000),
			DealerID:  &volvo.ID,
		},
	}
	for _, car := range cars {
		if err := carRepo.Save(car); err != nil {
			fmt.Fprintf(os.Stderr, "seed car %s %s: %v\n", car.Brand, car.Model, err)
			os.Exit(1)
		}
		fmt.Printf("car %s %s creado (id %d)\n", car.Brand, car.Model, car.ID)
	}
}
