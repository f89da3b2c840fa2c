package dto

// DealerRequest entrada para crear o actualizar un Dealer. En update, un
// name ausente deja el dealer tal cual (no-op).
type DealerRequest struct {
	Name *string `json:"name"`
}

// DealerResponse salida de un Dealer.
type DealerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
