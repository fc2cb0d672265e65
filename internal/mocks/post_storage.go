package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
)

// MockPostStorage реализует интерфейс post.PostStorage для тестирования
type MockPostStorage struct {
	mu     sync.Mutex
	posts  []*model.Post
	nextID int
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		nextID: 1,
	}
}

// SeedPost вспомогательный метод для тестирования: добавляет пост
// с заданными полями (в том числе датой) напрямую, минуя валидацию.
func (m *MockPostStorage) SeedPost(p *model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID >= m.nextID {
		m.nextID = p.ID + 1
	}
	m.posts = append(m.posts, p)
}

func (m *MockPostStorage) CreatePost(ctx context.Context, input model.CreatePostInput) (*model.Post, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", post.ErrInvalidInput)
	}
	if input.Body == "" {
		return nil, fmt.Errorf("%w: body must not be empty", post.ErrInvalidInput)
	}
	if input.Author == "" {
		return nil, fmt.Errorf("%w: author must not be empty", post.ErrInvalidInput)
	}

	var category model.Category
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidCategory, *input.Category)
		}
		category = *input.Category
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	now := time.Now()
	newPost := &model.Post{
		ID:       id,
		Title:    input.Title,
		Category: category,
		Body:     input.Body,
		Date:     &now,
	}

	m.posts = append(m.posts, newPost)
	return newPost, nil
}

func (m *MockPostStorage) GetPostById(id int) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, post.ErrNotFound
}

func (m *MockPostStorage) GetAllPosts() ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	posts := make([]*model.Post, len(m.posts))
	copy(posts, m.posts)
	return posts, nil
}

func (m *MockPostStorage) GetPostsByCategory(category model.Category) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	posts := make([]*model.Post, 0)
	for _, p := range m.posts {
		if p.Category == category {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (m *MockPostStorage) GetLatestPost() (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.posts) == 0 {
		return nil, post.ErrNotFound
	}
	return m.sortedByDateDesc()[0], nil
}

func (m *MockPostStorage) GetRecentPosts(count int) ([]*model.Post, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", post.ErrInvalidCount, count)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	posts := m.sortedByDateDesc()
	if count < len(posts) {
		posts = posts[:count]
	}
	return posts, nil
}

func (m *MockPostStorage) sortedByDateDesc() []*model.Post {
	posts := make([]*model.Post, len(m.posts))
	copy(posts, m.posts)

	sort.SliceStable(posts, func(i, j int) bool {
		var ti, tj time.Time
		if posts[i].Date != nil {
			ti = *posts[i].Date
		}
		if posts[j].Date != nil {
			tj = *posts[j].Date
		}
		return ti.After(tj)
	})
	return posts
}
