package seed

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogql/graph/model"
)

func TestLoad(t *testing.T) {
	postsPath := filepath.Join("testdata", "posts.json")
	usersPath := filepath.Join("testdata", "users.json")

	t.Run("Success load", func(t *testing.T) {
		data, err := Load(postsPath, usersPath)
		require.NoError(t, err)

		require.Len(t, data.Posts, 2)
		first := data.Posts[0]
		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 1, first.UserID)
		assert.Equal(t, "first", first.Title)
		assert.Equal(t, model.CategoryMeteor, first.Category)
		assert.Equal(t, 2, first.LikeCount)
		require.NotNil(t, first.Date)
		assert.Equal(t, time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), first.Date.UTC())

		// отсутствующая дата остается nil
		assert.Nil(t, data.Posts[1].Date)

		require.Len(t, data.Users, 1)
		u := data.Users[0]
		assert.Equal(t, "Bret", u.Username)
		assert.Equal(t, "Gwenborough", u.Address.City)
		assert.Equal(t, "-37.3159", u.Address.Geo.Lat)
		assert.Equal(t, "Romaguera-Crona", u.Company.Name)
	})

	t.Run("Error: invalid category in seed data", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "posts_bad_category.json"), usersPath)
		assert.ErrorIs(t, err, model.ErrInvalidCategory)
	})

	t.Run("Error: missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.json"), usersPath)
		assert.Error(t, err)
	})
}
