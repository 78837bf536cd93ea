// Package account содержит бизнес-логику учетных записей: регистрацию,
// проверку учетных данных и работу с профилем.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/rental-housing/internal/lib/password"
	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

// Ошибки уровня сервиса учетных записей.
var (
	// ErrEmailTaken учетная запись с таким email уже существует.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials общая ошибка входа: неизвестный email и неверный
	// пароль неразличимы, чтобы не раскрывать существование учетной записи.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository описывает контракт для работы с учетными записями в хранилище.
type Repository interface {
	// CreateUser сохраняет новую учетную запись и возвращает её ID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail возвращает учетную запись по email или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUserProfile целиком заменяет profileData, возвращает количество найденных.
	UpdateUserProfile(ctx context.Context, key models.UserKey, profile models.Profile) (int64, error)
}

// PublicUser открытые поля учетной записи, безопасные для ответа клиенту.
// Хэш пароля в ответы не попадает никогда.
type PublicUser struct {
	Name        string
	Email       string
	AccountRole string
}

// Service реализует операции над учетными записями.
type Service struct {
	users Repository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users Repository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Signup создает учетную запись с bcrypt-хэшем пароля и ролью "default" в профиле.
//
// Занятость email проверяется отдельным запросом до вставки; уникального
// индекса в хранилище нет, поэтому одновременные регистрации с одним email
// могут обе пройти проверку. Известное ограничение, сохранено как есть.
func (s *Service) Signup(ctx context.Context, name, email, rawPassword string) (*PublicUser, error) {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Profile: models.Profile{
			"accountRole": models.DefaultAccountRole,
		},
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("id", id))

	return &PublicUser{
		Name:        name,
		Email:       email,
		AccountRole: models.DefaultAccountRole,
	}, nil
}

// Login проверяет пароль пользователя по сохраненному хэшу.
// Отсутствие учетной записи и неверный пароль дают одну и ту же ошибку
// ErrInvalidCredentials. Токены не выпускаются.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*PublicUser, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &PublicUser{
		Name:        user.Name,
		Email:       user.Email,
		AccountRole: user.Profile.AccountRole(),
	}, nil
}

// GetProfile возвращает объект profileData учетной записи по email.
func (s *Service) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return user.Profile, nil
}

// UpdateProfile целиком заменяет profileData учетной записи, найденной
// по ключу (ID хранилища или email). Поля старого профиля, отсутствующие
// в новом, не сохраняются.
func (s *Service) UpdateProfile(ctx context.Context, key models.UserKey, profile models.Profile) error {
	matched, err := s.users.UpdateUserProfile(ctx, key, profile)
	if err != nil {
		return err
	}
	if matched == 0 {
		return storage.ErrNotFound
	}
	s.log.Info("updated user profile")
	return nil
}
