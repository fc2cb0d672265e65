package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogql/graph/model"
)

func TestBuildUsernameIndex(t *testing.T) {
	t.Run("Keys are lowercased usernames", func(t *testing.T) {
		users := []*model.User{
			{ID: 1, Username: "Bret"},
			{ID: 2, Username: "Antonette"},
		}

		m, err := BuildUsernameIndex(users)
		require.NoError(t, err)

		assert.Len(t, m, 2)
		assert.Equal(t, users[0], m["bret"])
		assert.Equal(t, users[1], m["antonette"])
		assert.NotContains(t, m, "Bret")
	})

	t.Run("Empty collection", func(t *testing.T) {
		m, err := BuildUsernameIndex(nil)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("Collision after lowercasing is rejected", func(t *testing.T) {
		users := []*model.User{
			{ID: 1, Username: "Bret"},
			{ID: 2, Username: "BRET"},
		}

		_, err := BuildUsernameIndex(users)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BRET")
	})
}
