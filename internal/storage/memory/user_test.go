package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"
)

func seedUsers() []*model.User {
	return []*model.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net"},
	}
}

func TestNewUserMemoryStorage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		storage, err := NewUserMemoryStorage(seedUsers())
		require.NoError(t, err)
		require.NotNil(t, storage)
	})

	t.Run("Error: username collision after lowercasing", func(t *testing.T) {
		users := append(seedUsers(), &model.User{ID: 4, Username: "bret"})

		_, err := NewUserMemoryStorage(users)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "username index")
	})
}

func TestUserMemoryStorage_GetAllUsers(t *testing.T) {
	users := seedUsers()
	storage, err := NewUserMemoryStorage(users)
	require.NoError(t, err)

	t.Run("All users in collection order", func(t *testing.T) {
		got, err := storage.GetAllUsers()
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Equal(t, users[0], got[0])
		assert.Equal(t, users[1], got[1])
		assert.Equal(t, users[2], got[2])
	})
}

func TestUserMemoryStorage_GetUserByUsername(t *testing.T) {
	storage, err := NewUserMemoryStorage(seedUsers())
	require.NoError(t, err)

	t.Run("Lookup is case-insensitive", func(t *testing.T) {
		exact, err := storage.GetUserByUsername("Samantha")
		require.NoError(t, err)

		lower, err := storage.GetUserByUsername("samantha")
		require.NoError(t, err)

		upper, err := storage.GetUserByUsername("SAMANTHA")
		require.NoError(t, err)

		assert.Equal(t, exact, lower)
		assert.Equal(t, exact, upper)
		assert.Equal(t, 3, exact.ID)
	})

	t.Run("Trying to get not exist user", func(t *testing.T) {
		_, err := storage.GetUserByUsername("nobody")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
