package usecase

import (
	"context"
	"strings"

	"gifboard/internal/dto/request"
	"gifboard/pkg/giphy"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type SearchService interface {
	// Search returns the upstream JSON document untouched.
	Search(ctx context.Context, req *request.SearchRequest) ([]byte, error)
}

type searchService struct {
	searcher giphy.Searcher
	log      *zap.Logger
}

func NewSearchService(searcher giphy.Searcher, log *zap.Logger) SearchService {
	return &searchService{
		searcher: searcher,
		log:      log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(ctx context.Context, req *request.SearchRequest) ([]byte, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, badRequest("Query parameter 'q' is required")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	limit := utils.ClampLimit(req.Limit)
	offset := utils.ClampOffset(req.Offset)

	body, err := s.searcher.Search(ctx, req.Query, limit, offset)
	if err != nil {
		s.log.Error("GIF search failed",
			zap.Error(err),
			zap.String("query", req.Query),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, upstream("Failed to fetch GIFs")
	}

	return body, nil
}
