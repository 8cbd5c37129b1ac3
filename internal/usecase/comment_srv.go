package usecase

import (
	"context"
	"errors"

	"gifboard/internal/data/entity"
	"gifboard/internal/data/repository"
	"gifboard/internal/dto/request"
	"gifboard/internal/dto/response"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type CommentService interface {
	Create(ctx context.Context, userID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	ListByGif(ctx context.Context, gifID string) ([]response.CommentResponse, error)
	// ListByGifs returns an entry for every requested id, empty when the GIF
	// has no comments.
	ListByGifs(ctx context.Context, gifIDs []string) (map[string][]response.CommentResponse, error)
	Update(ctx context.Context, id, userID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, id, userID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	config      utils.CommentsConfig
	log         *zap.Logger
}

func NewCommentService(commentRepo repository.CommentRepository, config utils.CommentsConfig, log *zap.Logger) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		config:      config,
		log:         log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) Create(ctx context.Context, userID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create comment validation failed", zap.Error(err))
		return nil, err
	}

	comment := &entity.Comment{
		GifID:  req.GifID,
		Text:   req.Text,
		UserID: &userID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("user_id", userID),
		zap.String("gif_id", comment.GifID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) ListByGif(ctx context.Context, gifID string) ([]response.CommentResponse, error) {
	if gifID == "" {
		return nil, badRequest("gifId or gifIds query parameter is required")
	}

	comments, err := s.commentRepo.FindByGifIDs(ctx, []string{gifID}, s.config.IncludeOrphaned)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		resp[i] = response.CommentToResponse(comment)
	}

	return resp, nil
}

func (s *commentService) ListByGifs(ctx context.Context, gifIDs []string) (map[string][]response.CommentResponse, error) {
	if len(gifIDs) == 0 {
		return nil, badRequest("gifId or gifIds query parameter is required")
	}

	comments, err := s.commentRepo.FindByGifIDs(ctx, gifIDs, s.config.IncludeOrphaned)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]response.CommentResponse, len(gifIDs))
	for _, gifID := range gifIDs {
		grouped[gifID] = []response.CommentResponse{}
	}
	// repository order is newest first, appending keeps it per group
	for _, comment := range comments {
		grouped[comment.GifID] = append(grouped[comment.GifID], response.CommentToResponse(comment))
	}

	return grouped, nil
}

func (s *commentService) Update(ctx context.Context, id, userID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update comment validation failed", zap.Error(err))
		return nil, err
	}

	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.UpdateText(ctx, id, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, notFound("Comment not found")
		}
		return nil, err
	}

	s.log.Info("Comment updated", zap.Int64("comment_id", id), zap.Int64("user_id", userID))

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return err
	}

	deleted, err := s.commentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Comment not found")
	}

	s.log.Info("Comment deleted", zap.Int64("comment_id", id), zap.Int64("user_id", userID))
	return nil
}

func (s *commentService) findOwned(ctx context.Context, id, userID int64) (*entity.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, notFound("Comment not found")
	}
	if !comment.OwnedBy(userID) {
		s.log.Warn("Comment ownership check failed",
			zap.Int64("comment_id", id),
			zap.Int64("user_id", userID),
		)
		return nil, forbidden("You can only modify your own comments")
	}
	return comment, nil
}
