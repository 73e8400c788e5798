package dto

type GenreView struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Fighting"`
}
