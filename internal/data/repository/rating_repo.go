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

type RatingRepository interface {
	// Upsert inserts the rating or overwrites the value of the caller's
	// existing rating for the same GIF. inserted reports which happened.
	Upsert(ctx context.Context, rating *entity.Rating) (inserted bool, err error)
	FindByID(ctx context.Context, id int64) (*entity.Rating, error)
	FindByGifIDs(ctx context.Context, gifIDs []string, userID *int64) ([]*entity.Rating, error)
	UpdateValue(ctx context.Context, id int64, value int) (*entity.Rating, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// Business queries
	GetStats(ctx context.Context, gifID string) (*entity.RatingStats, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

const ratingColumns = `id, gif_id, value, user_id, created_at, updated_at`

func scanRating(row pgx.Row) (*entity.Rating, error) {
	var rating entity.Rating
	err := row.Scan(
		&rating.ID,
		&rating.GifID,
		&rating.Value,
		&rating.UserID,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Upsert relies on the (user_id, gif_id) unique constraint so concurrent
// requests for one pair settle on a single row. xmax is 0 only for a freshly
// inserted tuple.
func (r *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	query := `
		INSERT INTO ratings (gif_id, value, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, gif_id)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query, rating.GifID, rating.Value, rating.UserID).Scan(
		&rating.ID,
		&rating.CreatedAt,
		&rating.UpdatedAt,
		&inserted,
	)
	if err != nil {
		r.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.Int64("user_id", rating.UserID),
			zap.String("gif_id", rating.GifID),
		)
		return false, fmt.Errorf("upsert rating for gif %s by user %d: %w", rating.GifID, rating.UserID, err)
	}

	return inserted, nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`

	rating, err := scanRating(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by ID", zap.Error(err), zap.Int64("rating_id", id))
		return nil, fmt.Errorf("find rating by ID %d: %w", id, err)
	}

	return rating, nil
}

// FindByGifIDs lists ratings for the GIFs, optionally only those by userID.
func (r *ratingRepository) FindByGifIDs(ctx context.Context, gifIDs []string, userID *int64) ([]*entity.Rating, error) {
	query := `
		SELECT ` + ratingColumns + `
		FROM ratings
		WHERE gif_id = ANY($1)
		  AND ($2::bigint IS NULL OR user_id = $2)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, gifIDs, userID)
	if err != nil {
		r.log.Error("Failed to find ratings by gif IDs",
			zap.Error(err),
			zap.Strings("gif_ids", gifIDs),
		)
		return nil, fmt.Errorf("find ratings by gif IDs: %w", err)
	}
	defer rows.Close()

	ratings := make([]*entity.Rating, 0)
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating rows: %w", err)
	}

	return ratings, nil
}

func (r *ratingRepository) UpdateValue(ctx context.Context, id int64, value int) (*entity.Rating, error) {
	query := `
		UPDATE ratings
		SET value = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + ratingColumns

	rating, err := scanRating(r.db.QueryRow(ctx, query, id, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update rating %d: %w", id, ErrNoRecord)
	}
	if err != nil {
		r.log.Error("Failed to update rating", zap.Error(err), zap.Int64("rating_id", id))
		return nil, fmt.Errorf("update rating %d: %w", id, err)
	}

	return rating, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete rating", zap.Error(err), zap.Int64("rating_id", id))
		return false, fmt.Errorf("delete rating %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *ratingRepository) GetStats(ctx context.Context, gifID string) (*entity.RatingStats, error) {
	query := `
		SELECT
			COALESCE(AVG(value), 0)::float8 AS average,
			COUNT(*) AS count
		FROM ratings
		WHERE gif_id = $1
	`

	stats := entity.RatingStats{GifID: gifID}
	err := r.db.QueryRow(ctx, query, gifID).Scan(&stats.Average, &stats.Count)
	if err != nil {
		r.log.Error("Failed to get rating stats", zap.Error(err), zap.String("gif_id", gifID))
		return nil, fmt.Errorf("get rating stats for %s: %w", gifID, err)
	}

	return &stats, nil
}
