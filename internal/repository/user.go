package repository

import (
	"context"

	"github.com/St1cky1/taskboard/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// создаем пользователя
func (r *UserRepository) Create(ctx context.Context, name, username, email, passwordHash string) (*entity.User, error) {

	query := `
	INSERT INTO "user" (name, username, email, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, username, email, password_hash, created_at, updated_at
	`

	return r.scanUser(r.db.QueryRow(ctx, query, name, username, email, passwordHash))
}

// получаем данные по id
func (r *UserRepository) GetById(ctx context.Context, id int) (*entity.User, error) {
	query := `
	SELECT id, name, username, email, password_hash, created_at, updated_at
	FROM "user"
	WHERE id = $1
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// GetByEmail - поиск по email для логина
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
	SELECT id, name, username, email, password_hash, created_at, updated_at
	FROM "user"
	WHERE email = $1
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// GetByUsername - проверка занятости username при регистрации
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
	SELECT id, name, username, email, password_hash, created_at, updated_at
	FROM "user"
	WHERE username = $1
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
