package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-hub-api/infrastructure/repository"
	"github.com/vfg2006/performance-hub-api/internal/config"
	"github.com/vfg2006/performance-hub-api/internal/domain"
	"github.com/vfg2006/performance-hub-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*domain.Principal, error)
	LoginUser(ctx context.Context, username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Principal, error)
	CreateUser(ctx context.Context, principal *domain.Principal, req *domain.CreateUserRequest) (*domain.CreateUserResponse, error)
	GetProfile(ctx context.Context, principal *domain.Principal) (*domain.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Authenticate valida o par usuário/senha apresentado em cada requisição
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Principal, error) {
	if username == "" || password == "" {
		return nil, newCredentialsError("Usuário e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, newCredentialsError("Usuário ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, newCredentialsError("Usuário ou senha incorretos")
	}

	return principalOf(user), nil
}

// LoginUser troca usuário e senha por um token JWT assinado
func (s *Service) LoginUser(ctx context.Context, username, password string) (string, error) {
	principal, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	token, err := s.generateJWT(principal)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar token de autenticação: %w", err)
	}

	return token, nil
}

func (s *Service) generateJWT(principal *domain.Principal) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:   principal.UserID,
		Username: principal.Username,
		Role:     principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newTokenError(ErrExpiredToken, "Token expirado")
		}
		return nil, newTokenError(ErrInvalidToken, "Token inválido")
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, newTokenError(ErrInvalidToken, "Token inválido")
	}

	return &domain.Principal{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// CreateUser cadastra um usuário (apenas administradores).
// Sem senha informada, uma senha forte é gerada e devolvida uma única vez.
func (s *Service) CreateUser(ctx context.Context, principal *domain.Principal, req *domain.CreateUserRequest) (*domain.CreateUserResponse, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	if !principal.IsAdmin() {
		return nil, domain.NewForbiddenError("Apenas administradores podem criar usuários")
	}

	if req == nil {
		return nil, domain.NewInvalidRequestError("Corpo da requisição ausente")
	}

	if req.Username == nil || strings.TrimSpace(*req.Username) == "" {
		return nil, domain.NewMissingFieldError("username")
	}

	role := domain.RoleManager
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, domain.NewInvalidFieldError("role", "valores aceitos: admin, manager")
		}
		role = *req.Role
	}

	var (
		password  string
		generated string
	)
	if req.Password == nil || *req.Password == "" {
		var err error
		generated, err = utils.GeneratePassword(utils.MinGeneratedPasswordLength)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar senha: %w", err)
		}
		password = generated
	} else {
		password = *req.Password
		if len(password) < minPasswordLength {
			return nil, domain.NewInvalidFieldError("password", fmt.Sprintf("a senha deve conter pelo menos %d caracteres", minPasswordLength))
		}
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &domain.User{
		Username:     *req.Username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"role":       user.Role,
		"created_by": principal.Username,
	}).Info("Usuário criado")

	return &domain.CreateUserResponse{User: user, GeneratedPassword: generated}, nil
}

func (s *Service) GetProfile(ctx context.Context, principal *domain.Principal) (*domain.User, error) {
	if err := domain.RequirePrincipal(principal); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.NewNotFoundError("user_id", principal.UserID)
	}

	user.PasswordHash = ""
	return user, nil
}

// EnsureAdmin cria o administrador inicial quando ele ainda não existe
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		logrus.Debug("Administrador inicial não configurado")
		return nil
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if existing != nil {
		return nil
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.userRepo.CreateUser(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	if err != nil {
		return err
	}

	logrus.WithField("username", username).Info("Administrador inicial criado")
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	cost := s.cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	return string(hashed), nil
}

func principalOf(user *domain.User) *domain.Principal {
	return &domain.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
