package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "segredo-de-teste",
		Auth: config.Auth{
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func strPtr(s string) *string { return &s }

func TestService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())
	ctx := context.Background()

	user := &domain.User{ID: 7, Username: "ana", PasswordHash: hashed(t, "senha-forte"), Role: domain.RoleManager}

	tests := []struct {
		name     string
		username string
		password string
		setup    func()
		wantErr  bool
	}{
		{
			name:     "Credenciais válidas - retorna o principal",
			username: "ana",
			password: "senha-forte",
			setup: func() {
				userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(user, nil)
			},
		},
		{
			name:     "Senha incorreta",
			username: "ana",
			password: "errada",
			setup: func() {
				userRepo.EXPECT().GetUserByUsername(gomock.Any(), "ana").Return(user, nil)
			},
			wantErr: true,
		},
		{
			name:     "Usuário inexistente",
			username: "bruno",
			password: "qualquer",
			setup: func() {
				userRepo.EXPECT().GetUserByUsername(gomock.Any(), "bruno").Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name:     "Credenciais vazias não consultam o banco",
			username: "",
			password: "",
			setup:    func() {},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			principal, err := service.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, principal)
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.True(t, IsCredentialsError(err))

				var domErr *domain.Error
				require.True(t, errors.As(err, &domErr))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, domErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), principal.UserID)
			assert.Equal(t, "ana", principal.Username)
			assert.Equal(t, domain.RoleManager, principal.Role)
		})
	}
}

func TestService_LoginAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())
	ctx := context.Background()

	userRepo.EXPECT().GetUserByUsername(gomock.Any(), "admin").
		Return(&domain.User{ID: 1, Username: "admin", PasswordHash: hashed(t, "admin-pass"), Role: domain.RoleAdmin}, nil)

	token, err := service.LoginUser(ctx, "admin", "admin-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), principal.UserID)
	assert.True(t, principal.IsAdmin())

	_, err = service.ValidateToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token emitido com outra chave
	other := NewService(userRepo, &config.Config{SecretKey: "outra", Auth: config.Auth{TokenTTL: time.Hour}})
	_, err = other.ValidateToken(token)
	assert.True(t, IsTokenError(err))
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := NewService(nil, testConfig())
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }

	token, err := service.generateJWT(&domain.Principal{UserID: 3, Username: "ana", Role: domain.RoleManager})
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	var domErr *domain.Error
	require.True(t, errors.As(err, &domErr))
	assert.Equal(t, apiErrors.ErrInvalidToken, domErr.Code)
}

func TestService_CreateUser(t *testing.T) {
	admin := &domain.Principal{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	manager := &domain.Principal{UserID: 2, Username: "gerente", Role: domain.RoleManager}
	invalidRole := domain.Role("root")

	tests := []struct {
		name      string
		principal *domain.Principal
		req       *domain.CreateUserRequest
		setup     func(repo *mocks.MockUserRepository)
		wantErr   error
		validate  func(t *testing.T, resp *domain.CreateUserResponse)
	}{
		{
			name:      "Sem principal - Unauthorized antes de validar",
			principal: nil,
			req:       &domain.CreateUserRequest{},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   domain.ErrUnauthorized,
		},
		{
			name:      "Gerente não pode criar usuários",
			principal: manager,
			req:       &domain.CreateUserRequest{Username: strPtr("novo")},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   domain.ErrForbidden,
		},
		{
			name:      "Username ausente",
			principal: admin,
			req:       &domain.CreateUserRequest{Username: strPtr("   ")},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "Role inválida",
			principal: admin,
			req:       &domain.CreateUserRequest{Username: strPtr("novo"), Role: &invalidRole},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "Senha curta",
			principal: admin,
			req:       &domain.CreateUserRequest{Username: strPtr("novo"), Password: strPtr("123")},
			setup:     func(repo *mocks.MockUserRepository) {},
			wantErr:   domain.ErrValidation,
		},
		{
			name:      "Sem senha - gera senha forte",
			principal: admin,
			req:       &domain.CreateUserRequest{Username: strPtr("novo")},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						u.ID = 10
						return u, nil
					})
			},
			validate: func(t *testing.T, resp *domain.CreateUserResponse) {
				assert.Equal(t, int64(10), resp.User.ID)
				assert.Equal(t, domain.RoleManager, resp.User.Role)
				assert.GreaterOrEqual(t, len(resp.GeneratedPassword), 12)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.PasswordHash), []byte(resp.GeneratedPassword)))
			},
		},
		{
			name:      "Username duplicado - Conflict",
			principal: admin,
			req:       &domain.CreateUserRequest{Username: strPtr("ana"), Password: strPtr("senha-forte")},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewConflictError("username", "registro já existe"))
			},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)
			service := NewService(repo, testConfig())

			resp, err := service.CreateUser(context.Background(), tt.principal, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			tt.validate(t, resp)
		})
	}
}

func TestService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	_, err := service.GetProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.EXPECT().GetUserByID(gomock.Any(), int64(4)).
		Return(&domain.User{ID: 4, Username: "ana", PasswordHash: "hash", Role: domain.RoleManager}, nil)

	user, err := service.GetProfile(context.Background(), &domain.Principal{UserID: 4})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestService_EnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())
	ctx := context.Background()

	// Sem senha configurada nada é feito
	require.NoError(t, service.EnsureAdmin(ctx, "admin", ""))

	repo.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(&domain.User{ID: 1}, nil)
	require.NoError(t, service.EnsureAdmin(ctx, "admin", "segredo"))

	gomock.InOrder(
		repo.EXPECT().GetUserByUsername(gomock.Any(), "root").Return(nil, nil),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleAdmin, u.Role)
				u.ID = 99
				return u, nil
			}),
	)
	require.NoError(t, service.EnsureAdmin(ctx, "root", "segredo"))
}
