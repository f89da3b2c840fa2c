package dto

import "time"

// APIError cuerpo de error HTTP. Misma forma para todo fallo: mensaje,
// status, ruta y momento. Nunca incluye stack traces.
type APIError struct {
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode"`
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
}
