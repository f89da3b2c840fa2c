package entity

import "github.com/shopspring/decimal"

// MinCarYear año mínimo de fabricación aceptado en el catálogo.
const MinCarYear = 1908

// Car representa un vehículo del catálogo. Pertenece a lo sumo a un Dealer
// (la FK es nullable en el esquema, aunque el seed siempre asigna uno).
type Car struct {
	ID        int64
	Brand     string
	Model     string
	Color     string
	RegNumber string
	ImageURL  string
	Year      int
	Price     decimal.Decimal // columna car_price, NOT NULL
	DealerID  *int64
	Dealer    *Dealer // cargado junto con el Car para la respuesta
}
