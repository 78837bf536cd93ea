package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/rental-housing/internal/lib/password"
	"github.com/magabrotheeeer/rental-housing/internal/models"
	"github.com/magabrotheeeer/rental-housing/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) UpdateUserProfile(ctx context.Context, key models.UserKey, profile models.Profile) (int64, error) {
	args := m.Called(ctx, key, profile)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo *RepoMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, logger)
}

func TestSignup_Success(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, storage.ErrNotFound)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		// в хранилище уходит только хэш, не исходный пароль
		return u.Email == "a@x.com" &&
			u.PasswordHash != "secret" &&
			password.CompareHash(u.PasswordHash, "secret") == nil &&
			u.Profile.AccountRole() == models.DefaultAccountRole
	})).Return("507f1f77bcf86cd799439011", nil)

	svc := newTestService(repo)
	user, err := svc.Signup(context.Background(), "A", "a@x.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "default", user.AccountRole)
	repo.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&models.User{Email: "a@x.com"}, nil)

	svc := newTestService(repo)
	user, err := svc.Signup(context.Background(), "A", "a@x.com", "secret")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestSignup_StoreError(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection reset"))

	svc := newTestService(repo)
	_, err := svc.Signup(context.Background(), "A", "a@x.com", "secret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestSignupThenLogin_SameRole(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, storage.ErrNotFound).Once()

	var created models.User
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(models.User)
		}).
		Return("507f1f77bcf86cd799439011", nil).Once()

	svc := newTestService(repo)
	signedUp, err := svc.Signup(context.Background(), "A", "a@x.com", "secret")
	require.NoError(t, err)

	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&created, nil)

	loggedIn, err := svc.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, signedUp.AccountRole, loggedIn.AccountRole)
	assert.Equal(t, "default", loggedIn.AccountRole)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailAndWrongPassword_Indistinguishable(t *testing.T) {
	hash, err := password.GetHash("secret")
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "missing@x.com").Return(nil, storage.ErrNotFound)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&models.User{
		Email:        "a@x.com",
		PasswordHash: hash,
		Profile:      models.Profile{"accountRole": "default"},
	}, nil)

	svc := newTestService(repo)

	_, errUnknown := svc.Login(context.Background(), "missing@x.com", "secret")
	_, errWrongPass := svc.Login(context.Background(), "a@x.com", "wrong")

	// обе неудачи дают одну и ту же ошибку
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_StoreError(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection reset"))

	svc := newTestService(repo)
	_, err := svc.Login(context.Background(), "a@x.com", "secret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	profile := models.Profile{"accountRole": "default", "bio": "hello"}

	repo := new(RepoMock)
	repo.On("GetUserByEmail", mock.Anything, "a@x.com").Return(&models.User{
		Email:   "a@x.com",
		Profile: profile,
	}, nil)
	repo.On("GetUserByEmail", mock.Anything, "missing@x.com").Return(nil, storage.ErrNotFound)

	svc := newTestService(repo)

	got, err := svc.GetProfile(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = svc.GetProfile(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	newProfile := models.Profile{"accountRole": "admin"}

	tests := []struct {
		name    string
		key     models.UserKey
		matched int64
		wantErr error
	}{
		{
			name:    "успешная замена по email",
			key:     models.UserKeyByEmail("a@x.com"),
			matched: 1,
			wantErr: nil,
		},
		{
			name:    "успешная замена по id",
			key:     models.UserKeyByID("507f1f77bcf86cd799439011"),
			matched: 1,
			wantErr: nil,
		},
		{
			name:    "пользователь не найден",
			key:     models.UserKeyByEmail("missing@x.com"),
			matched: 0,
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("UpdateUserProfile", mock.Anything, tt.key, newProfile).Return(tt.matched, nil)

			svc := newTestService(repo)
			err := svc.UpdateProfile(context.Background(), tt.key, newProfile)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
