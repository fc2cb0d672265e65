package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/VitaminP8/blogql/graph/model"
)

// Типы схемы статичны и не зависят от хранилищ,
// поэтому объявлены на уровне пакета.

var geoCoordType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "GeoCoord",
	Description: "The address for a user",
	Fields: graphql.Fields{
		"lat": &graphql.Field{Type: graphql.String},
		"lng": &graphql.Field{Type: graphql.String},
	},
})

var addressType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Address",
	Description: "The address for a user",
	Fields: graphql.Fields{
		"street":  &graphql.Field{Type: graphql.String},
		"suite":   &graphql.Field{Type: graphql.String},
		"city":    &graphql.Field{Type: graphql.String},
		"zipcode": &graphql.Field{Type: graphql.String},
		"geo":     &graphql.Field{Type: geoCoordType},
	},
})

var companyType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Company",
	Description: "The company for a user",
	Fields: graphql.Fields{
		"name":        &graphql.Field{Type: graphql.String},
		"catchPhrase": &graphql.Field{Type: graphql.String},
		"bs":          &graphql.Field{Type: graphql.String},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "User",
	Description: "Represents an user on the blog site",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.Int},
		"name":     &graphql.Field{Type: graphql.String},
		"username": &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"address":  &graphql.Field{Type: addressType},
		"phone":    &graphql.Field{Type: graphql.String},
		"website":  &graphql.Field{Type: graphql.String},
		"company":  &graphql.Field{Type: companyType},
	},
})

// categoryEnum — имена символов идут на провод GraphQL (METEOR и т.д.),
// внутренние значения — строки рубрик ("meteor" и т.д.).
var categoryEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "Category",
	Description: "A Category of the blog",
	Values: graphql.EnumValueConfigMap{
		"METEOR":     &graphql.EnumValueConfig{Value: model.CategoryMeteor},
		"PRODUCT":    &graphql.EnumValueConfig{Value: model.CategoryProduct},
		"USER_STORY": &graphql.EnumValueConfig{Value: model.CategoryUserStory},
		"OTHER":      &graphql.EnumValueConfig{Value: model.CategoryOther},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Post",
	Description: "Represent the type of a blog post",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.Int},
		"userId":    &graphql.Field{Type: graphql.Int},
		"title":     &graphql.Field{Type: graphql.String},
		"category":  &graphql.Field{Type: categoryEnum},
		"likeCount": &graphql.Field{Type: graphql.Int},
		"body":      &graphql.Field{Type: graphql.String},
		"date": &graphql.Field{
			Type: graphql.Float,
			// Дата отдается как свежий числовой снимок момента времени
			// (миллисекунды), отсутствующая дата — null, а не ошибка.
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				pst, ok := p.Source.(*model.Post)
				if !ok || pst.Date == nil {
					return nil, nil
				}
				return float64(pst.Date.UnixMilli()), nil
			},
		},
	},
})
