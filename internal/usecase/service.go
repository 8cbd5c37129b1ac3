package usecase

import (
	"gifboard/internal/data/repository"
	"gifboard/pkg/giphy"
	"gifboard/pkg/token"
	"gifboard/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Comment CommentService
	Rating  RatingService
	Search  SearchService
}

func NewService(
	repo *repository.Repository,
	issuer token.Issuer,
	searcher giphy.Searcher,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, issuer, log),
		User:    NewUserService(repo.User, log),
		Comment: NewCommentService(repo.Comment, config.Comments, log),
		Rating:  NewRatingService(repo.Rating, log),
		Search:  NewSearchService(searcher, log),
	}
}
