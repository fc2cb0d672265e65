package mocks

import (
	"strings"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"
)

// MockUserStorage реализует интерфейс user.UserStorage для тестирования
type MockUserStorage struct {
	mu    sync.Mutex
	users []*model.User
	index map[string]*model.User // username в нижнем регистре -> user
}

// NewMockUserStorage создает новый экземпляр мока для хранилища пользователей
func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		index: make(map[string]*model.User),
	}
}

// SeedUser вспомогательный метод для тестирования
func (m *MockUserStorage) SeedUser(u *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = append(m.users, u)
	m.index[strings.ToLower(u.Username)] = u
}

func (m *MockUserStorage) GetAllUsers() ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*model.User, len(m.users))
	copy(users, m.users)
	return users, nil
}

func (m *MockUserStorage) GetUserByUsername(username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.index[strings.ToLower(username)]
	if !exists {
		return nil, user.ErrNotFound
	}
	return u, nil
}
