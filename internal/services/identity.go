package services

import (
	"context"
	"errors"
	"time"

	"github.com/atelierhub/atelier-orders/internal/config"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/atelierhub/atelier-orders/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error)
	GetUser(ctx context.Context, login string) (*models.UserData, error)
	GenerateJWT(username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Users   storage.UsersStorage
}

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users}
}

// Регистрация нового пользователя
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Login)

	existing, err := i.Users.GetUser(ctx, user.Login)
	if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		logger.Warn("User already exist")
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Users.AddUser(ctx, user.Login, string(hashedPassword), user.Phone)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Login, err)
		return err
	}
	return nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error) {
	logger.Info("Authenticate user", user.Login)

	userData, err := i.Users.GetUser(ctx, user.Login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return false, nil
		}
		logger.Error("Error getting user", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Login)
		return false, nil
	}

	logger.Info("User authenticated", user.Login)
	return true, nil
}

// GetUser - снимок пользователя вместе с группами и разрешениями
func (i *Identity) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	return i.Users.GetUser(ctx, login)
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
