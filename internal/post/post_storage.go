package post

import (
	"context"
	"errors"

	"github.com/VitaminP8/blogql/graph/model"
)

var (
	ErrNotFound     = errors.New("post not found")
	ErrInvalidCount = errors.New("count must be non-negative")
	ErrInvalidInput = errors.New("invalid input")
)

type PostStorage interface {
	CreatePost(ctx context.Context, input model.CreatePostInput) (*model.Post, error)
	GetPostById(id int) (*model.Post, error)
	GetAllPosts() ([]*model.Post, error)
	GetPostsByCategory(category model.Category) ([]*model.Post, error)
	GetLatestPost() (*model.Post, error)
	GetRecentPosts(count int) ([]*model.Post, error)
}
