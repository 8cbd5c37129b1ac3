package wire

import (
	"context"
	"sort"
	"sync"
	"time"

	"gifboard/internal/data/entity"
	"gifboard/internal/data/repository"
)

// in-memory stand-ins for the PostgreSQL repositories

type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*entity.User
	comments map[int64]*entity.Comment
	ratings  map[int64]*entity.Rating
}

func newMemoryRepository() *repository.Repository {
	s := &memoryStore{
		users:    make(map[int64]*entity.User),
		comments: make(map[int64]*entity.Comment),
		ratings:  make(map[int64]*entity.Rating),
	}
	return &repository.Repository{
		User:    &memoryUsers{s},
		Comment: &memoryComments{s},
		Rating:  &memoryRatings{s},
	}
}

func (s *memoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memoryUsers struct{ s *memoryStore }

func (m *memoryUsers) Create(ctx context.Context, user *entity.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.ID = m.s.id()
	user.CreatedAt, user.UpdatedAt = time.Now(), time.Now()
	stored := *user
	m.s.users[user.ID] = &stored
	return nil
}

func (m *memoryUsers) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryUsers) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) FindAll(ctx context.Context) ([]*entity.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	users := make([]*entity.User, 0, len(m.s.users))
	for _, u := range m.s.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryUsers) Update(ctx context.Context, user *entity.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[user.ID]; !ok {
		return repository.ErrNoRecord
	}
	stored := *user
	m.s.users[user.ID] = &stored
	return nil
}

func (m *memoryUsers) Delete(ctx context.Context, id int64) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.users[id]; !ok {
		return false, nil
	}
	delete(m.s.users, id)
	for _, c := range m.s.comments {
		if c.UserID != nil && *c.UserID == id {
			c.UserID = nil
		}
	}
	for rid, r := range m.s.ratings {
		if r.UserID == id {
			delete(m.s.ratings, rid)
		}
	}
	return true, nil
}

type memoryComments struct{ s *memoryStore }

func (m *memoryComments) withAuthor(c *entity.Comment) *entity.Comment {
	copied := *c
	copied.Username = nil
	if c.UserID != nil {
		if u, ok := m.s.users[*c.UserID]; ok {
			name := u.Username
			copied.Username = &name
		}
	}
	return &copied
}

func (m *memoryComments) Create(ctx context.Context, comment *entity.Comment) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	comment.ID = m.s.id()
	comment.CreatedAt, comment.UpdatedAt = time.Now(), time.Now()
	stored := *comment
	m.s.comments[comment.ID] = &stored
	*comment = *m.withAuthor(&stored)
	return nil
}

func (m *memoryComments) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if c, ok := m.s.comments[id]; ok {
		return m.withAuthor(c), nil
	}
	return nil, nil
}

func (m *memoryComments) FindByGifIDs(ctx context.Context, gifIDs []string, includeOrphaned bool) ([]*entity.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	wanted := make(map[string]bool)
	for _, id := range gifIDs {
		wanted[id] = true
	}
	out := make([]*entity.Comment, 0)
	for _, c := range m.s.comments {
		if wanted[c.GifID] && (includeOrphaned || c.UserID != nil) {
			out = append(out, m.withAuthor(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryComments) UpdateText(ctx context.Context, id int64, text string) (*entity.Comment, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c, ok := m.s.comments[id]
	if !ok {
		return nil, repository.ErrNoRecord
	}
	c.Text = text
	c.UpdatedAt = time.Now()
	return m.withAuthor(c), nil
}

func (m *memoryComments) Delete(ctx context.Context, id int64) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	_, ok := m.s.comments[id]
	delete(m.s.comments, id)
	return ok, nil
}

type memoryRatings struct{ s *memoryStore }

func (m *memoryRatings) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, r := range m.s.ratings {
		if r.UserID == rating.UserID && r.GifID == rating.GifID {
			r.Value = rating.Value
			r.UpdatedAt = time.Now()
			*rating = *r
			return false, nil
		}
	}
	rating.ID = m.s.id()
	rating.CreatedAt, rating.UpdatedAt = time.Now(), time.Now()
	stored := *rating
	m.s.ratings[rating.ID] = &stored
	return true, nil
}

func (m *memoryRatings) FindByID(ctx context.Context, id int64) (*entity.Rating, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if r, ok := m.s.ratings[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (m *memoryRatings) FindByGifIDs(ctx context.Context, gifIDs []string, userID *int64) ([]*entity.Rating, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	wanted := make(map[string]bool)
	for _, id := range gifIDs {
		wanted[id] = true
	}
	out := make([]*entity.Rating, 0)
	for _, r := range m.s.ratings {
		if wanted[r.GifID] && (userID == nil || r.UserID == *userID) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryRatings) UpdateValue(ctx context.Context, id int64, value int) (*entity.Rating, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	r, ok := m.s.ratings[id]
	if !ok {
		return nil, repository.ErrNoRecord
	}
	r.Value = value
	copied := *r
	return &copied, nil
}

func (m *memoryRatings) Delete(ctx context.Context, id int64) (bool, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	_, ok := m.s.ratings[id]
	delete(m.s.ratings, id)
	return ok, nil
}

func (m *memoryRatings) GetStats(ctx context.Context, gifID string) (*entity.RatingStats, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	stats := &entity.RatingStats{GifID: gifID}
	var sum int
	for _, r := range m.s.ratings {
		if r.GifID == gifID {
			sum += r.Value
			stats.Count++
		}
	}
	if stats.Count > 0 {
		stats.Average = float64(sum) / float64(stats.Count)
	}
	return stats, nil
}
