// Package auth содержит логику бизнес-уровня для проверки учётных данных и выдачи токена.
package auth

import (
	"context"
	"errors"

	"github.com/chweng/leave-system/internal/lib/jwt"
	"github.com/chweng/leave-system/internal/models"
)

// ErrInvalidCredentials возвращается при любой неудаче входа.
// Неизвестный логин и неверный пароль намеренно неразличимы для вызывающего.
var ErrInvalidCredentials = errors.New("invalid account or password")

// UserRepository описывает контракт для поиска пользователей в хранилище.
type UserRepository interface {
	// FindUser возвращает пользователя по логину или ошибку, если не найден.
	FindUser(ctx context.Context, account string) (*models.User, error)
}

// LoginResult — результат успешного входа: токен, роль и отображаемое имя.
//
// Токен декоративный: конечные точки API его не требуют.
type LoginResult struct {
	Token string
	Role  string
	Name  string
}

// Service отвечает за аутентификацию пользователей.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет учётные данные и выдаёт подписанный JWT.
//
// Сравнение пароля — точное совпадение строк: пароли в этой системе
// хранятся открытым текстом.
func (s *Service) Login(ctx context.Context, account, password string) (*LoginResult, error) {
	user, err := s.users.FindUser(ctx, account)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Account, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}
