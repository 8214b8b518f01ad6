package userRepo

import "gatherly/models"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	GetManyByID(ids []string) ([]models.User, error)
	SetFields(id string, fields map[string]any) error
}
