package usecase

import (
	"context"
	"errors"

	"gifboard/internal/data/entity"
	"gifboard/internal/data/repository"
	"gifboard/internal/dto/request"
	"gifboard/internal/dto/response"

	"go.uber.org/zap"
)

type RatingService interface {
	// Upsert reports created=true when a new rating row was inserted.
	Upsert(ctx context.Context, userID int64, req *request.UpsertRatingRequest) (resp *response.RatingResponse, created bool, err error)
	ListByGif(ctx context.Context, gifID string, userID *int64) ([]response.RatingResponse, error)
	ListByGifs(ctx context.Context, gifIDs []string, userID *int64) (map[string][]response.RatingResponse, error)
	Update(ctx context.Context, id, userID int64, req *request.UpdateRatingRequest) (*response.RatingResponse, error)
	Delete(ctx context.Context, id, userID int64) error

	// Stats
	GetStats(ctx context.Context, gifID string) (*response.RatingStatsResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	log        *zap.Logger
}

func NewRatingService(ratingRepo repository.RatingRepository, log *zap.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		log:        log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) Upsert(ctx context.Context, userID int64, req *request.UpsertRatingRequest) (*response.RatingResponse, bool, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Upsert rating validation failed", zap.Error(err))
		return nil, false, err
	}

	rating := &entity.Rating{
		GifID:  req.GifID,
		Value:  *req.Value,
		UserID: userID,
	}

	inserted, err := s.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return nil, false, err
	}

	s.log.Info("Rating saved",
		zap.Int64("rating_id", rating.ID),
		zap.Int64("user_id", userID),
		zap.String("gif_id", rating.GifID),
		zap.Int("value", rating.Value),
		zap.Bool("inserted", inserted),
	)

	resp := response.RatingToResponse(rating)
	return &resp, inserted, nil
}

func (s *ratingService) ListByGif(ctx context.Context, gifID string, userID *int64) ([]response.RatingResponse, error) {
	if gifID == "" {
		return nil, badRequest("gifId or gifIds query parameter is required")
	}

	ratings, err := s.ratingRepo.FindByGifIDs(ctx, []string{gifID}, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		resp[i] = response.RatingToResponse(rating)
	}

	return resp, nil
}

func (s *ratingService) ListByGifs(ctx context.Context, gifIDs []string, userID *int64) (map[string][]response.RatingResponse, error) {
	if len(gifIDs) == 0 {
		return nil, badRequest("gifId or gifIds query parameter is required")
	}

	ratings, err := s.ratingRepo.FindByGifIDs(ctx, gifIDs, userID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]response.RatingResponse, len(gifIDs))
	for _, gifID := range gifIDs {
		grouped[gifID] = []response.RatingResponse{}
	}
	for _, rating := range ratings {
		grouped[rating.GifID] = append(grouped[rating.GifID], response.RatingToResponse(rating))
	}

	return grouped, nil
}

func (s *ratingService) Update(ctx context.Context, id, userID int64, req *request.UpdateRatingRequest) (*response.RatingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update rating validation failed", zap.Error(err))
		return nil, err
	}

	if err := s.checkOwner(ctx, id, userID); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.UpdateValue(ctx, id, *req.Value)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecord) {
			return nil, notFound("Rating not found")
		}
		return nil, err
	}

	s.log.Info("Rating updated",
		zap.Int64("rating_id", id),
		zap.Int64("user_id", userID),
		zap.Int("value", rating.Value),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.checkOwner(ctx, id, userID); err != nil {
		return err
	}

	deleted, err := s.ratingRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Rating not found")
	}

	s.log.Info("Rating deleted", zap.Int64("rating_id", id), zap.Int64("user_id", userID))
	return nil
}

func (s *ratingService) GetStats(ctx context.Context, gifID string) (*response.RatingStatsResponse, error) {
	if gifID == "" {
		return nil, badRequest("gifId query parameter is required")
	}

	stats, err := s.ratingRepo.GetStats(ctx, gifID)
	if err != nil {
		return nil, err
	}

	resp := response.RatingStatsToResponse(stats)
	return &resp, nil
}

func (s *ratingService) checkOwner(ctx context.Context, id, userID int64) error {
	rating, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rating == nil {
		return notFound("Rating not found")
	}
	if rating.UserID != userID {
		s.log.Warn("Rating ownership check failed",
			zap.Int64("rating_id", id),
			zap.Int64("user_id", userID),
		)
		return forbidden("You can only modify your own ratings")
	}
	return nil
}
