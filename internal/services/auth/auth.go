// Package auth содержит бизнес-логику регистрации и входа:
// клиентов, администратора и одноразовую настройку администратора.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/subscription-shop/internal/lib/password"
	"github.com/magabrotheeeer/subscription-shop/internal/lib/sanitize"
	"github.com/magabrotheeeer/subscription-shop/internal/models"
	"github.com/magabrotheeeer/subscription-shop/internal/session"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// GetUserByEmailAndRole возвращает пользователя по почте и роли.
	GetUserByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	// CountUsersByRole возвращает количество пользователей с ролью.
	CountUsersByRole(ctx context.Context, role models.Role) (int, error)
}

// Service отвечает за регистрацию и аутентификацию.
type Service struct {
	users UserRepository
}

// New создает новый экземпляр Service.
func New(users UserRepository) *Service {
	return &Service{users: users}
}

// RegisterForm данные формы регистрации клиента.
type RegisterForm struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Country   string `validate:"required,max=100"`
	Email     string `validate:"required,email,max=255"`
	Password  string `validate:"required,min=6"`
}

// RegisterClient создает нового клиента с нулевым балансом и баллами.
// Текстовые поля очищаются от разметки, пароль хэшируется.
// Занятая почта возвращается как models.ErrDuplicateEmail.
func (s *Service) RegisterClient(ctx context.Context, form RegisterForm) (int64, error) {
	const op = "services.auth.RegisterClient"

	hashed, err := password.GetHash(form.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        form.Email,
		PasswordHash: hashed,
		Role:         models.RoleClient,
		FirstName:    sanitize.Clean(form.FirstName),
		LastName:     sanitize.Clean(form.LastName),
		Country:      sanitize.Clean(form.Country),
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// LoginClient проверяет учетные данные клиента и возвращает снимок
// его личности для сессии. Неизвестная почта и неверный пароль
// неразличимы для вызывающего: обе дают models.ErrBadCredentials.
func (s *Service) LoginClient(ctx context.Context, email, rawPassword string) (*session.ClientIdentity, error) {
	const op = "services.auth.LoginClient"

	user, err := s.users.GetUserByEmailAndRole(ctx, email, models.RoleClient)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrBadCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrBadCredentials)
	}
	return &session.ClientIdentity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Country:   user.Country,
		Balance:   user.Balance,
	}, nil
}

// LoginAdmin проверяет учетные данные администратора.
func (s *Service) LoginAdmin(ctx context.Context, email, rawPassword string) (*session.AdminIdentity, error) {
	const op = "services.auth.LoginAdmin"

	user, err := s.users.GetUserByEmailAndRole(ctx, email, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrBadCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrBadCredentials)
	}
	return &session.AdminIdentity{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}

// AdminExists сообщает, создан ли уже администратор.
func (s *Service) AdminExists(ctx context.Context) (bool, error) {
	const op = "services.auth.AdminExists"

	count, err := s.users.CountUsersByRole(ctx, models.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return count > 0, nil
}

// AdminForm данные формы одноразовой настройки администратора.
type AdminForm struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6"`
}

// CreateAdmin создает единственного администратора. Повторный вызов
// после успешной настройки возвращает models.ErrAdminExists:
// пути восстановления через второго администратора нет.
func (s *Service) CreateAdmin(ctx context.Context, form AdminForm) (int64, error) {
	const op = "services.auth.CreateAdmin"

	exists, err := s.AdminExists(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return 0, fmt.Errorf("%s: %w", op, models.ErrAdminExists)
	}

	hashed, err := password.GetHash(form.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.users.CreateUser(ctx, models.User{
		Email:        form.Email,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
