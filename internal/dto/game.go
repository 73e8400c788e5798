package dto

// CreateGamePayload is the body of POST /games.
type CreateGamePayload struct {
	Name        string   `json:"name" validate:"required,max=50" example:"Street Fighter II"`
	GenreID     uint     `json:"genreId" validate:"required,lte=2147483647" example:"1"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=100000,scale=2" example:"19.99"`
	ReleaseDate Date     `json:"releaseDate" validate:"required" swaggertype:"string" example:"1992-07-15"`
}

// UpdateGamePayload is the body of PUT /games/{id}. Every field overwrites
// the stored value.
type UpdateGamePayload struct {
	Name        string   `json:"name" validate:"required,max=50" example:"Street Fighter II Turbo"`
	GenreID     uint     `json:"genreId" validate:"required,lte=2147483647" example:"1"`
	Price       *float64 `json:"price" validate:"required,gte=0,lte=100000,scale=2" example:"9.99"`
	ReleaseDate Date     `json:"releaseDate" validate:"required" swaggertype:"string" example:"1992-07-15"`
}

// GameSummaryView is one element of GET /games.
type GameSummaryView struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Street Fighter II"`
	Genre       string  `json:"genre" example:"Fighting"`
	Price       float64 `json:"price" example:"19.99"`
	ReleaseDate Date    `json:"releaseDate" swaggertype:"string" example:"1992-07-15"`
}

// GameDetailView is returned by GET /games/{id} and POST /games.
type GameDetailView struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Street Fighter II"`
	GenreID     uint    `json:"genreId" example:"1"`
	Price       float64 `json:"price" example:"19.99"`
	ReleaseDate Date    `json:"releaseDate" swaggertype:"string" example:"1992-07-15"`
}
