package graph

import (
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/user"
)

// Resolver служит корневой точкой для всех резолверов.
// Хранилища внедряются явно — никакого глобального состояния.
type Resolver struct {
	PostStore post.PostStorage
	UserStore user.UserStorage
}
