package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-hub-api/infrastructure/database"
	"github.com/vfg2006/performance-hub-api/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

type userRepository struct {
	conn database.Conn
}

func NewUserRepository(conn database.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	builder := r.conn.Builder().
		Insert(usersTable).
		Columns("username", "password_hash", "role").
		Values(user.Username, user.PasswordHash, string(user.Role))

	id, err := insertReturningID(ctx, r.conn, builder, "username")
	if err != nil {
		return nil, err
	}

	user.ID = id
	return user, nil
}

// GetUserByUsername retorna nil, nil quando o usuário não existe
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username})
}

// GetUserByID retorna nil, nil quando o usuário não existe
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := r.conn.Builder().
		Select("id", "username", "password_hash", "role").
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, database.WrapError(err, "erro ao montar consulta de usuário")
	}

	var (
		user domain.User
		role string
	)
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.WrapError(err, "erro ao buscar usuário")
	}

	user.Role = domain.Role(role)
	return &user, nil
}
