package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/VitaminP8/blogql/graph/model"
)

// Data — стартовое содержимое обеих коллекций.
type Data struct {
	Posts []*model.Post
	Users []*model.User
}

// Load читает сид-данные из JSON-файлов. Коллекции заполняются один раз
// при старте процесса; невалидная рубрика в постах — ошибка загрузки
// (валидацию делает Category.UnmarshalJSON).
func Load(postsPath, usersPath string) (*Data, error) {
	posts, err := loadPosts(postsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	users, err := loadUsers(usersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return &Data{Posts: posts, Users: users}, nil
}

func loadPosts(path string) ([]*model.Post, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var posts []*model.Post
	if err := json.Unmarshal(file, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func loadUsers(path string) ([]*model.User, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var users []*model.User
	if err := json.Unmarshal(file, &users); err != nil {
		return nil, err
	}

	return users, nil
}
