package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/user"
)

// resolvePosts — список постов, опционально отфильтрованный по рубрике.
// Порядок коллекции сохраняется.
func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	if category, ok := p.Args["category"].(model.Category); ok {
		return r.PostStore.GetPostsByCategory(category)
	}
	return r.PostStore.GetAllPosts()
}

// resolveUsers — все пользователи либо поиск по username без учета регистра.
// Ненайденный username — пустой список, а не ошибка.
func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	username, ok := p.Args["username"].(string)
	if !ok {
		return r.UserStore.GetAllUsers()
	}

	u, err := r.UserStore.GetUserByUsername(username)
	if errors.Is(err, user.ErrNotFound) {
		return []*model.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	return []*model.User{u}, nil
}

// resolveLatestPost — самый свежий пост; null для пустой коллекции.
func (r *Resolver) resolveLatestPost(p graphql.ResolveParams) (interface{}, error) {
	latest, err := r.PostStore.GetLatestPost()
	if errors.Is(err, post.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return latest, nil
}

// resolveRecentPosts — первые count постов по убыванию даты.
// Отрицательный count — ошибка аргумента до обращения к данным.
func (r *Resolver) resolveRecentPosts(p graphql.ResolveParams) (interface{}, error) {
	count, ok := p.Args["count"].(int)
	if !ok {
		return nil, errors.New("count argument is required")
	}

	return r.PostStore.GetRecentPosts(count)
}

// resolvePost — пост по id; null, если такого поста нет.
func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(int)
	if !ok {
		return nil, errors.New("id argument is required")
	}

	found, err := r.PostStore.GetPostById(id)
	if errors.Is(err, post.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return found, nil
}
