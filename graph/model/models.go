package model

import "time"

// User — пользователь блога. Коллекция загружается один раз при старте
// и после этого не изменяется (мутаций над пользователями нет).
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

type Address struct {
	Street  string   `json:"street"`
	Suite   string   `json:"suite"`
	City    string   `json:"city"`
	Zipcode string   `json:"zipcode"`
	Geo     GeoCoord `json:"geo"`
}

type GeoCoord struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	Bs          string `json:"bs"`
}

// Post — запись в блоге. Date может отсутствовать (nil).
type Post struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Title     string     `json:"title"`
	Category  Category   `json:"category,omitempty"`
	LikeCount int        `json:"likeCount"`
	Body      string     `json:"body"`
	Date      *time.Time `json:"date"`
}

// CreatePostInput — аргументы мутации createPost.
// Author — username автора, не проверяется по индексу пользователей.
type CreatePostInput struct {
	Title    string
	Body     string
	Category *Category
	Author   string
}
