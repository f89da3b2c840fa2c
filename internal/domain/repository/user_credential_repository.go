package repository

import "github.com/jhoicas/Concesionario-api/internal/domain/entity"

// UserCredentialRepository define el puerto de persistencia para credenciales.
// Las credenciales se crean una sola vez en el registro; no hay update ni
// delete en este alcance.
type UserCredentialRepository interface {
	// FindByUsername busca por username exacto (los usernames se guardan en
	// minúsculas). Devuelve (nil, nil) si no existe.
	FindByUsername(username string) (*entity.UserCredential, error)
	Create(cred *entity.UserCredential) error
}
