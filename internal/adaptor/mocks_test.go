package adaptor

import (
	"context"
	"errors"

	"gifboard/internal/dto/request"
	"gifboard/internal/dto/response"
)

var errNotImplemented = errors.New("not implemented")

type mockAuthService struct {
	registerFunc func(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	loginFunc    func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return nil, errNotImplemented
}

type mockCommentService struct {
	createFunc     func(ctx context.Context, userID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	listByGifFunc  func(ctx context.Context, gifID string) ([]response.CommentResponse, error)
	listByGifsFunc func(ctx context.Context, gifIDs []string) (map[string][]response.CommentResponse, error)
	updateFunc     func(ctx context.Context, id, userID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	deleteFunc     func(ctx context.Context, id, userID int64) error
}

func (m *mockCommentService) Create(ctx context.Context, userID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return nil, errNotImplemented
}

func (m *mockCommentService) ListByGif(ctx context.Context, gifID string) ([]response.CommentResponse, error) {
	if m.listByGifFunc != nil {
		return m.listByGifFunc(ctx, gifID)
	}
	return nil, errNotImplemented
}

func (m *mockCommentService) ListByGifs(ctx context.Context, gifIDs []string) (map[string][]response.CommentResponse, error) {
	if m.listByGifsFunc != nil {
		return m.listByGifsFunc(ctx, gifIDs)
	}
	return nil, errNotImplemented
}

func (m *mockCommentService) Update(ctx context.Context, id, userID int64, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, userID, req)
	}
	return nil, errNotImplemented
}

func (m *mockCommentService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errNotImplemented
}

type mockRatingService struct {
	upsertFunc     func(ctx context.Context, userID int64, req *request.UpsertRatingRequest) (*response.RatingResponse, bool, error)
	listByGifFunc  func(ctx context.Context, gifID string, userID *int64) ([]response.RatingResponse, error)
	listByGifsFunc func(ctx context.Context, gifIDs []string, userID *int64) (map[string][]response.RatingResponse, error)
	updateFunc     func(ctx context.Context, id, userID int64, req *request.UpdateRatingRequest) (*response.RatingResponse, error)
	deleteFunc     func(ctx context.Context, id, userID int64) error
	getStatsFunc   func(ctx context.Context, gifID string) (*response.RatingStatsResponse, error)
}

func (m *mockRatingService) Upsert(ctx context.Context, userID int64, req *request.UpsertRatingRequest) (*response.RatingResponse, bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return nil, false, errNotImplemented
}

func (m *mockRatingService) ListByGif(ctx context.Context, gifID string, userID *int64) ([]response.RatingResponse, error) {
	if m.listByGifFunc != nil {
		return m.listByGifFunc(ctx, gifID, userID)
	}
	return nil, errNotImplemented
}

func (m *mockRatingService) ListByGifs(ctx context.Context, gifIDs []string, userID *int64) (map[string][]response.RatingResponse, error) {
	if m.listByGifsFunc != nil {
		return m.listByGifsFunc(ctx, gifIDs, userID)
	}
	return nil, errNotImplemented
}

func (m *mockRatingService) Update(ctx context.Context, id, userID int64, req *request.UpdateRatingRequest) (*response.RatingResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, userID, req)
	}
	return nil, errNotImplemented
}

func (m *mockRatingService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, userID)
	}
	return errNotImplemented
}

func (m *mockRatingService) GetStats(ctx context.Context, gifID string) (*response.RatingStatsResponse, error) {
	if m.getStatsFunc != nil {
		return m.getStatsFunc(ctx, gifID)
	}
	return nil, errNotImplemented
}

type mockSearchService struct {
	searchFunc func(ctx context.Context, req *request.SearchRequest) ([]byte, error)
}

func (m *mockSearchService) Search(ctx context.Context, req *request.SearchRequest) ([]byte, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return nil, errNotImplemented
}

type mockUserService struct {
	createFunc func(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	listFunc   func(ctx context.Context) ([]response.UserResponse, error)
	getFunc    func(ctx context.Context, id int64) (*response.UserResponse, error)
	updateFunc func(ctx context.Context, id, callerID int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	deleteFunc func(ctx context.Context, id, callerID int64) error
}

func (m *mockUserService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) List(ctx context.Context) ([]response.UserResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*response.UserResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Update(ctx context.Context, id, callerID int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, callerID, req)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Delete(ctx context.Context, id, callerID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, callerID)
	}
	return errNotImplemented
}
