package repository

import (
	"context"
	"errors"
	"fmt"

	"gifboard/internal/data/entity"
	"gifboard/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and fills in the generated id and timestamps.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := ur.db.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Username, ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, username, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return ur.findOne(ctx, query, id)
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	return ur.findOne(ctx, query, username)
}

func (ur *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user", zap.Error(err), zap.Any("key", arg))
		return nil, fmt.Errorf("find user %v: %w", arg, err)
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, password, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

// Update writes username and password hash. It returns ErrDuplicate when the
// new username is taken.
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, password = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := ur.db.QueryRow(ctx, query, user.ID, user.Username, user.PasswordHash).Scan(&user.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("update user %d: %w", user.ID, ErrDuplicate)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("update user %d: %w", user.ID, ErrNoRecord)
	}
	if err != nil {
		ur.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("update user %d: %w", user.ID, err)
	}

	return nil
}

// Delete removes the user. Comments are kept with a NULL owner, ratings go
// with the account.
func (ur *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
