package index

import (
	"fmt"
	"strings"

	"github.com/VitaminP8/blogql/graph/model"
)

// BuildUsernameIndex строит производный индекс username -> user.
// Ключи — username в нижнем регистре; индекс только для чтения и
// никогда не является вторым источником истины.
// Коллизия после приведения к нижнему регистру — ошибка загрузки,
// а не молчаливая перезапись.
func BuildUsernameIndex(users []*model.User) (map[string]*model.User, error) {
	m := make(map[string]*model.User, len(users))

	for _, u := range users {
		key := strings.ToLower(u.Username)
		if _, exists := m[key]; exists {
			return nil, fmt.Errorf("duplicate username %q after lowercasing", u.Username)
		}
		m[key] = u
	}

	return m, nil
}
