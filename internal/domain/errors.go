package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los mensajes son los que ve
// el cliente en el cuerpo de error HTTP.
var (
	ErrUsernameTaken  = errors.New("Username has been taken, Please choose another!")
	ErrInvalidRole    = errors.New("User cannot be created as ADMIN, has to be USER or DEALER")
	ErrCarYear        = errors.New("Cars weren't invented till 1908 anything before is unknown")
	ErrBadCredentials = errors.New("Bad credentials")
)

// NotFoundError es el error de dominio para lookups por id que no encuentran
// el recurso. Lleva el mensaje completo porque incluye el id consultado.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewCarNotFound construye el not-found para un Car.
func NewCarNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Car with id of %d is not found", id)}
}

// NewDealerNotFound construye el not-found para un Dealer.
func NewDealerNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Dealer with id of %d is not found", id)}
}

// NewUserNotFound construye el not-found para un UserCredential por username.
func NewUserNotFound(username string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("User with username %s not found", username)}
}

// IsNotFound responde si err es un NotFoundError de dominio.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
