package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/index"
	"github.com/VitaminP8/blogql/internal/user"
)

type UserMemoryStorage struct {
	mu         sync.RWMutex
	users      []*model.User
	byUsername map[string]*model.User // производный индекс, ключи в нижнем регистре
}

// NewUserMemoryStorage создает хранилище поверх загруженных пользователей.
// Возвращает ошибку, если два username совпадают после приведения
// к нижнему регистру.
func NewUserMemoryStorage(users []*model.User) (*UserMemoryStorage, error) {
	byUsername, err := index.BuildUsernameIndex(users)
	if err != nil {
		return nil, fmt.Errorf("failed to build username index: %w", err)
	}

	return &UserMemoryStorage{
		users:      users,
		byUsername: byUsername,
	}, nil
}

func (s *UserMemoryStorage) GetAllUsers() ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, len(s.users))
	copy(users, s.users)

	return users, nil
}

func (s *UserMemoryStorage) GetUserByUsername(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byUsername[strings.ToLower(username)]
	if !exists {
		return nil, user.ErrNotFound
	}

	return u, nil
}
