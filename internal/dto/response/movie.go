package response

type MovieResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Director     string   `json:"director"`
	Screenwriter string   `json:"screenwriter"`
	Actors       []string `json:"actors"`
	Description  string   `json:"description"`
	TrailerURL   string   `json:"trailerUrl"`
	PosterURL    string   `json:"posterUrl"`
	AgeRating    string   `json:"ageRating"`
	Duration     int      `json:"duration"`
}

type MovieDetailResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Director     string   `json:"director"`
	Screenwriter string   `json:"screenwriter"`
	Genres       []string `json:"genres"`
	Actors       []string `json:"actors"`
	Description  string   `json:"description"`
	TrailerURL   string   `json:"trailerUrl"`
	PosterURL    string   `json:"posterUrl"`
	AgeRating    string   `json:"ageRating"`
	Duration     int      `json:"duration"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
