package entity

type AgeRating string

const (
	AgeRatingChildren AgeRating = "children"
	AgeRatingTeen     AgeRating = "teen"
	AgeRatingAdult    AgeRating = "adult"
)

type Movie struct {
	ID           int64     `db:"id"`
	Title        string    `db:"title"`
	Director     string    `db:"director"`
	Screenwriter string    `db:"screenwriter"`
	Actors       []string  `db:"actors"`
	Description  string    `db:"description"`
	TrailerURL   string    `db:"trailer_url"`
	PosterURL    string    `db:"poster_url"`
	AgeRating    AgeRating `db:"age_rating"`
	Duration     int       `db:"duration"` // minutes
}

// MovieWithGenres carries the movie row plus its aggregated genre names.
type MovieWithGenres struct {
	Movie
	Genres []string
}
