package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Category — закрытое множество рубрик блога.
type Category string

const (
	CategoryMeteor    Category = "meteor"
	CategoryProduct   Category = "product"
	CategoryUserStory Category = "user-story"
	CategoryOther     Category = "other"
)

var ErrInvalidCategory = errors.New("invalid category value")

func (c Category) IsValid() bool {
	switch c {
	case CategoryMeteor, CategoryProduct, CategoryUserStory, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory валидирует строковое значение рубрики.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// UnmarshalJSON отклоняет значения вне множества рубрик — так невалидная
// рубрика в сид-данных обнаруживается уже на этапе загрузки.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
