package helpers

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// GetUsername - извлекает имя пользователя из контекста JWT токена
func GetUsername(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	login, ok := claims["username"].(string)
	if !ok || login == "" {
		return "", fmt.Errorf("undefined username")
	}
	return login, nil
}
