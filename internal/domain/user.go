package domain

type User struct {
	ID     string
	Name   string
	Color  string
	Avatar string
}
