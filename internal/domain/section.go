package domain

type Section struct {
	ID        string
	ProjectID string
	Name      string
	Color     string
}
