package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/VitaminP8/blogql/graph/model"
)

// resolveCreatePost — единственная мутация: добавляет пост в коллекцию.
// Хранилище валидирует вход до записи; username автора по индексу
// не проверяется.
func (r *Resolver) resolveCreatePost(p graphql.ResolveParams) (interface{}, error) {
	title, ok := p.Args["title"].(string)
	if !ok {
		return nil, errors.New("title argument is required")
	}

	body, ok := p.Args["body"].(string)
	if !ok {
		return nil, errors.New("body argument is required")
	}

	author, ok := p.Args["author"].(string)
	if !ok {
		return nil, errors.New("author argument is required")
	}

	input := model.CreatePostInput{
		Title:  title,
		Body:   body,
		Author: author,
	}
	if category, ok := p.Args["category"].(model.Category); ok {
		input.Category = &category
	}

	return r.PostStore.CreatePost(p.Context, input)
}
