package model

type Genre struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// MovieGenre is the join row tagging a movie with a genre.
// The (movie_id, genre_id) pair is unique.
type MovieGenre struct {
	ID      int64 `db:"id" json:"id"`
	MovieID int64 `db:"movie_id" json:"movie_id"`
	GenreID int64 `db:"genre_id" json:"genre_id"`
}
