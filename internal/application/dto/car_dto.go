package dto

import "github.com/shopspring/decimal"

// CarRequest entrada para crear o actualizar un Car. En update los campos
// ausentes se persisten con su valor cero: el payload reemplaza la fila
// completa, no se mezcla con la existente.
type CarRequest struct {
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Color     string          `json:"color"`
	RegNumber string          `json:"reg_number"`
	ImageURL  string          `json:"image_url"`
	Year      int             `json:"year"`
	Price     decimal.Decimal `json:"price"`
	DealerID  *int64          `json:"dealer_id"`
}

// CarResponse salida de un Car con su dealer (si tiene).
type CarResponse struct {
	ID        int64           `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Color     string          `json:"color"`
	RegNumber string          `json:"reg_number"`
	ImageURL  string          `json:"image_url"`
	Year      int             `json:"year"`
	Price     decimal.Decimal `json:"price"`
	Dealer    *DealerResponse `json:"dealer"`
}
