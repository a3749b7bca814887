package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelierhub/atelier-orders/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, login, password, phone)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (login) DO NOTHING
						RETURNING login;`
	GetUser = `SELECT u.id, u.login, u.password, u.phone, u.is_superuser, g.name, gc.capability
			   FROM USERS u
			   LEFT JOIN USER_GROUPS ug ON ug.user_id = u.id
			   LEFT JOIN GROUPS g ON g.id = ug.group_id
			   LEFT JOIN GROUP_CAPABILITIES gc ON gc.group_id = g.id
			   WHERE u.login = $1
			   ORDER BY g.name;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) AddUser(ctx context.Context, login string, password string, phone string) error {
	var prevLogin string
	userID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, login, password, phone).Scan(&prevLogin)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add user: %w", err)
}

// GetUser - Получение снимка пользователя вместе с группами и разрешениями.
// Одна строка выборки на каждую пару (группа, разрешение), группируем при чтении.
func (s *UserDatabase) GetUser(ctx context.Context, login string) (*models.UserData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetUser, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	defer rows.Close()

	var user *models.UserData
	groups := make(map[string][]string)
	order := make([]string, 0)

	for rows.Next() {
		var (
			userID      string
			dbLogin     string
			password    string
			phone       string
			isSuperuser bool
			groupName   *string
			capability  *string
		)
		if err := rows.Scan(&userID, &dbLogin, &password, &phone, &isSuperuser, &groupName, &capability); err != nil {
			return nil, fmt.Errorf("failed scan user data: %w", err)
		}
		if user == nil {
			user = &models.UserData{
				UserUUID:     userID,
				Login:        dbLogin,
				PasswordHash: password,
				Phone:        phone,
				IsSuperuser:  isSuperuser,
			}
		}
		if groupName == nil {
			continue
		}
		if _, ok := groups[*groupName]; !ok {
			order = append(order, *groupName)
			groups[*groupName] = nil
		}
		if capability != nil {
			groups[*groupName] = append(groups[*groupName], *capability)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	for _, name := range order {
		user.Groups = append(user.Groups, models.GroupData{Name: name, Capabilities: groups[name]})
	}
	return user, nil
}
