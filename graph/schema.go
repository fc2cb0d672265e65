package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema собирает модель типов и резолверы в единую схему.
// Имена корневых объектов сохранены историческими: BlogSchema и BlogMutations.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "BlogSchema",
		Description: "Root of the Blog Schema",
		Fields: graphql.Fields{
			"posts": &graphql.Field{
				Type:        graphql.NewList(postType),
				Description: "List of posts in the blog",
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: categoryEnum},
				},
				Resolve: r.resolvePosts,
			},
			"users": &graphql.Field{
				Type:        graphql.NewList(userType),
				Description: "List of users",
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUsers,
			},
			"latestPost": &graphql.Field{
				Type:        postType,
				Description: "Latest post in the blog",
				Resolve:     r.resolveLatestPost,
			},
			"recentPosts": &graphql.Field{
				Type:        graphql.NewList(postType),
				Description: "Recent posts in the blog",
				Args: graphql.FieldConfigArgument{
					"count": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.Int),
						Description: "Number of recent items",
					},
				},
				Resolve: r.resolveRecentPosts,
			},
			"post": &graphql.Field{
				Type:        postType,
				Description: "Post by id",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.resolvePost,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BlogMutations",
		Fields: graphql.Fields{
			"createPost": &graphql.Field{
				Type:        postType,
				Description: "Create a new blog post",
				Args: graphql.FieldConfigArgument{
					"title":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"body":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"category": &graphql.ArgumentConfig{Type: categoryEnum},
					"author": &graphql.ArgumentConfig{
						Type:        graphql.NewNonNull(graphql.String),
						Description: "username of the author",
					},
				},
				Resolve: r.resolveCreatePost,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
