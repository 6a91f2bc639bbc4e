package repository

import "github.com/cesge/control-equipos/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del sistema.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
