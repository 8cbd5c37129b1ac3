package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"gifboard/internal/data/entity"
	"gifboard/pkg/token"
)

var errNotImplemented = errors.New("not implemented")

// =============================================================================
// Repository mocks
// =============================================================================

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user *entity.User) error
	findByIDFunc       func(ctx context.Context, id int64) (*entity.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	findAllFunc        func(ctx context.Context) ([]*entity.User, error)
	updateFunc         func(ctx context.Context, user *entity.User) error
	deleteFunc         func(ctx context.Context, id int64) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, errNotImplemented
}

type mockCommentRepo struct {
	createFunc       func(ctx context.Context, comment *entity.Comment) error
	findByIDFunc     func(ctx context.Context, id int64) (*entity.Comment, error)
	findByGifIDsFunc func(ctx context.Context, gifIDs []string, includeOrphaned bool) ([]*entity.Comment, error)
	updateTextFunc   func(ctx context.Context, id int64, text string) (*entity.Comment, error)
	deleteFunc       func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	return errNotImplemented
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockCommentRepo) FindByGifIDs(ctx context.Context, gifIDs []string, includeOrphaned bool) ([]*entity.Comment, error) {
	if m.findByGifIDsFunc != nil {
		return m.findByGifIDsFunc(ctx, gifIDs, includeOrphaned)
	}
	return nil, errNotImplemented
}

func (m *mockCommentRepo) UpdateText(ctx context.Context, id int64, text string) (*entity.Comment, error) {
	if m.updateTextFunc != nil {
		return m.updateTextFunc(ctx, id, text)
	}
	return nil, errNotImplemented
}

func (m *mockCommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, errNotImplemented
}

type mockRatingRepo struct {
	upsertFunc       func(ctx context.Context, rating *entity.Rating) (bool, error)
	findByIDFunc     func(ctx context.Context, id int64) (*entity.Rating, error)
	findByGifIDsFunc func(ctx context.Context, gifIDs []string, userID *int64) ([]*entity.Rating, error)
	updateValueFunc  func(ctx context.Context, id int64, value int) (*entity.Rating, error)
	deleteFunc       func(ctx context.Context, id int64) (bool, error)
	getStatsFunc     func(ctx context.Context, gifID string) (*entity.RatingStats, error)
}

func (m *mockRatingRepo) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, rating)
	}
	return false, errNotImplemented
}

func (m *mockRatingRepo) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockRatingRepo) FindByGifIDs(ctx context.Context, gifIDs []string, userID *int64) ([]*entity.Rating, error) {
	if m.findByGifIDsFunc != nil {
		return m.findByGifIDsFunc(ctx, gifIDs, userID)
	}
	return nil, errNotImplemented
}

func (m *mockRatingRepo) UpdateValue(ctx context.Context, id int64, value int) (*entity.Rating, error) {
	if m.updateValueFunc != nil {
		return m.updateValueFunc(ctx, id, value)
	}
	return nil, errNotImplemented
}

func (m *mockRatingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, errNotImplemented
}

func (m *mockRatingRepo) GetStats(ctx context.Context, gifID string) (*entity.RatingStats, error) {
	if m.getStatsFunc != nil {
		return m.getStatsFunc(ctx, gifID)
	}
	return nil, errNotImplemented
}

// memoryRatingRepo mimics the unique (user_id, gif_id) upsert in memory.
type memoryRatingRepo struct {
	mockRatingRepo
	mu     sync.Mutex
	nextID int64
	rows   map[ratingKey]*entity.Rating
}

type ratingKey struct {
	userID int64
	gifID  string
}

func newMemoryRatingRepo() *memoryRatingRepo {
	return &memoryRatingRepo{rows: make(map[ratingKey]*entity.Rating)}
}

func (m *memoryRatingRepo) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := ratingKey{userID: rating.UserID, gifID: rating.GifID}
	now := time.Now()
	if existing, ok := m.rows[key]; ok {
		existing.Value = rating.Value
		existing.UpdatedAt = now
		*rating = *existing
		return false, nil
	}

	m.nextID++
	rating.ID = m.nextID
	rating.CreatedAt = now
	rating.UpdatedAt = now
	stored := *rating
	m.rows[key] = &stored
	return true, nil
}

func (m *memoryRatingRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// =============================================================================
// Collaborator mocks
// =============================================================================

type mockIssuer struct {
	issueFunc  func(userID int64) (string, error)
	verifyFunc func(raw string) (*token.Claims, error)
}

func (m *mockIssuer) Issue(userID int64) (string, error) {
	if m.issueFunc != nil {
		return m.issueFunc(userID)
	}
	return "", errNotImplemented
}

func (m *mockIssuer) Verify(raw string) (*token.Claims, error) {
	if m.verifyFunc != nil {
		return m.verifyFunc(raw)
	}
	return nil, errNotImplemented
}

func (m *mockIssuer) Expiry() time.Duration {
	return time.Hour
}

type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, limit, offset int) ([]byte, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string, limit, offset int) ([]byte, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit, offset)
	}
	return nil, errNotImplemented
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func stringPtr(v string) *string {
	return &v
}
