package user

import (
	"errors"

	"github.com/VitaminP8/blogql/graph/model"
)

var ErrNotFound = errors.New("user not found")

type UserStorage interface {
	GetAllUsers() ([]*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
}
