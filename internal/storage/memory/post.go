package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
)

type PostMemoryStorage struct {
	mu     sync.RWMutex
	posts  []*model.Post // порядок коллекции наблюдаем снаружи, поэтому slice, а не map
	nextID int
}

// NewPostMemoryStorage создает хранилище поверх загруженных постов.
// Счетчик ID инициализируется как max(id) + 1, а не длиной коллекции.
func NewPostMemoryStorage(posts []*model.Post) *PostMemoryStorage {
	nextID := 1
	for _, p := range posts {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	return &PostMemoryStorage{
		posts:  posts,
		nextID: nextID,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, input model.CreatePostInput) (*model.Post, error) {
	// Валидация аргументов до каких-либо изменений хранилища
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", post.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, fmt.Errorf("%w: body must not be empty", post.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Author) == "" {
		return nil, fmt.Errorf("%w: author must not be empty", post.ErrInvalidInput)
	}

	var category model.Category
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidCategory, *input.Category)
		}
		category = *input.Category
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	now := time.Now()
	newPost := &model.Post{
		ID:        id,
		UserID:    0, // автор по индексу не резолвится
		Title:     input.Title,
		Category:  category,
		LikeCount: 0,
		Body:      input.Body,
		Date:      &now,
	}

	s.posts = append(s.posts, newPost)
	return newPost, nil
}

func (s *PostMemoryStorage) GetPostById(id int) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, post.ErrNotFound
}

func (s *PostMemoryStorage) GetAllPosts() ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, len(s.posts))
	copy(posts, s.posts)

	return posts, nil
}

func (s *PostMemoryStorage) GetPostsByCategory(category model.Category) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0)
	for _, p := range s.posts {
		if p.Category == category {
			posts = append(posts, p)
		}
	}

	return posts, nil
}

func (s *PostMemoryStorage) GetLatestPost() (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.posts) == 0 {
		return nil, post.ErrNotFound
	}

	return s.sortedByDateDesc()[0], nil
}

func (s *PostMemoryStorage) GetRecentPosts(count int) ([]*model.Post, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", post.ErrInvalidCount, count)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := s.sortedByDateDesc()
	if count < len(posts) {
		posts = posts[:count]
	}

	return posts, nil
}

// sortedByDateDesc сортирует копию коллекции по убыванию даты.
// Сортировка стабильная: посты с равными датами сохраняют исходный
// относительный порядок. Само хранилище порядок не меняет.
// Вызывать под мьютексом.
func (s *PostMemoryStorage) sortedByDateDesc() []*model.Post {
	posts := make([]*model.Post, len(s.posts))
	copy(posts, s.posts)

	sort.SliceStable(posts, func(i, j int) bool {
		return postTime(posts[i]).After(postTime(posts[j]))
	})

	return posts
}

// postTime трактует отсутствующую дату как нулевой момент времени —
// такие посты уходят в конец выборки.
func postTime(p *model.Post) time.Time {
	if p.Date != nil {
		return *p.Date
	}
	return time.Time{}
}
