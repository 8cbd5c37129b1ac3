package repository

import (
	"errors"

	"gifboard/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when a write hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNoRecord is returned by updates whose target row is gone.
	ErrNoRecord = errors.New("record not found")
)

const uniqueViolation = "23505"

type Repository struct {
	User    UserRepository
	Comment CommentRepository
	Rating  RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Rating:  NewRatingRepository(db, log),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
