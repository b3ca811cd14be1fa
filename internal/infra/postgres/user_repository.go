package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-backend/internal/domain"
)

const uniqueViolation = "23505"

// UserRepository stores accounts.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const selectUser = `
	SELECT id, username, email, password_hash, first_name, last_name, is_staff, is_active, date_joined, last_login
	FROM users`

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, first_name, last_name, is_staff, is_active, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.IsStaff, user.IsActive, user.DateJoined,
	).Scan(&user.ID)
	if err != nil {
		return mapUserError(err, "insert user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getOne(ctx, selectUser+` WHERE username = $1`, username)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsStaff, &u.IsActive, &u.DateJoined, &u.LastLogin,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5, is_staff = $6, is_active = $7
		WHERE id = $1`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.IsStaff, user.IsActive)
	if err != nil {
		return mapUserError(err, "update user")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func mapUserError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_username_key":
			return domain.ErrUsernameTaken
		case "idx_users_email_lower":
			return domain.ErrEmailTaken
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
