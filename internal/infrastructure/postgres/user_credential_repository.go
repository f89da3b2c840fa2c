package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/domain/repository"
)

var _ repository.UserCredentialRepository = (*UserCredentialRepo)(nil)

// UserCredentialRepo implementación del puerto UserCredentialRepository sobre PostgreSQL.
type UserCredentialRepo struct {
	pool *pgxpool.Pool
}

// NewUserCredentialRepository construye el adaptador de persistencia para credenciales.
func NewUserCredentialRepository(pool *pgxpool.Pool) *UserCredentialRepo {
	return &UserCredentialRepo{pool: pool}
}

// FindByUsername busca una credencial por username exacto; (nil, nil) si no existe.
func (r *UserCredentialRepo) FindByUsername(username string) (*entity.UserCredential, error) {
	var c entity.UserCredential
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, username, password_hash, role FROM user_credentials WHERE username = $1`,
		username,
	).Scan(&c.ID, &c.Username, &c.PasswordHash, &c.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential by username: %w", err)
	}
	return &c, nil
}

// Create persiste una credencial nueva. Una violación del unique de username
// se traduce al error de dominio (carrera entre el lookup del use case y este insert).
func (r *UserCredentialRepo) Create(cred *entity.UserCredential) error {
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO user_credentials (id, username, password_hash, role) VALUES ($1, $2, $3, $4)`,
		cred.ID, cred.Username, cred.PasswordHash, cred.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}
