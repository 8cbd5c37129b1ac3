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

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)
	FindByGifIDs(ctx context.Context, gifIDs []string, includeOrphaned bool) ([]*entity.Comment, error)
	UpdateText(ctx context.Context, id int64, text string) (*entity.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

// every read joins the author so responses carry the username
const commentColumns = `c.id, c.gif_id, c.text, c.user_id, c.created_at, c.updated_at, u.username`

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var comment entity.Comment
	err := row.Scan(
		&comment.ID,
		&comment.GifID,
		&comment.Text,
		&comment.UserID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.Username,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		WITH c AS (
			INSERT INTO comments (gif_id, text, user_id)
			VALUES ($1, $2, $3)
			RETURNING id, gif_id, text, user_id, created_at, updated_at
		)
		SELECT ` + commentColumns + `
		FROM c
		LEFT JOIN users u ON u.id = c.user_id
	`

	created, err := scanComment(r.db.QueryRow(ctx, query, comment.GifID, comment.Text, comment.UserID))
	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("gif_id", comment.GifID),
		)
		return fmt.Errorf("create comment for gif %s: %w", comment.GifID, err)
	}

	*comment = *created
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("find comment by ID %d: %w", id, err)
	}

	return comment, nil
}

// FindByGifIDs returns the comments of every listed GIF, newest first.
func (r *commentRepository) FindByGifIDs(ctx context.Context, gifIDs []string, includeOrphaned bool) ([]*entity.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.gif_id = ANY($1)
		  AND ($2 OR c.user_id IS NOT NULL)
		ORDER BY c.created_at DESC, c.id DESC
	`

	rows, err := r.db.Query(ctx, query, gifIDs, includeOrphaned)
	if err != nil {
		r.log.Error("Failed to find comments by gif IDs",
			zap.Error(err),
			zap.Strings("gif_ids", gifIDs),
		)
		return nil, fmt.Errorf("find comments by gif IDs: %w", err)
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) UpdateText(ctx context.Context, id int64, text string) (*entity.Comment, error) {
	query := `
		WITH c AS (
			UPDATE comments
			SET text = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, gif_id, text, user_id, created_at, updated_at
		)
		SELECT ` + commentColumns + `
		FROM c
		LEFT JOIN users u ON u.id = c.user_id
	`

	comment, err := scanComment(r.db.QueryRow(ctx, query, id, text))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("update comment %d: %w", id, ErrNoRecord)
	}
	if err != nil {
		r.log.Error("Failed to update comment", zap.Error(err), zap.Int64("comment_id", id))
		return nil, fmt.Errorf("update comment %d: %w", id, err)
	}

	return comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete comment", zap.Error(err), zap.Int64("comment_id", id))
		return false, fmt.Errorf("delete comment %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
