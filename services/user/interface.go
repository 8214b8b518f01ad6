package user

import (
	userRepo "gatherly/database/repository/user"
	"gatherly/models"
)

// RegistrationRequest carries the fields of the signup form.
type RegistrationRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// UserService covers registration, authentication, and profile management.
type UserService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	SearchByUsername(username string) (*models.User, error)
	UpdateProfile(userID string, fields map[string]any) (*models.User, error)
	UpdateFCMToken(userID, token string) error
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
