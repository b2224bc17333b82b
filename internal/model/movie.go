package model

import (
	"time"
)

type Movie struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Director    *string   `db:"director" json:"director,omitempty"`
	IMDBScore   float64   `db:"imdb_score" json:"imdb_score"`
	Popularity  float64   `db:"popularity" json:"popularity"`
	MoviePoster string    `db:"movie_poster" json:"movie_poster"`
	UserID      int64     `db:"user_id" json:"user_id"`
	DatePosted  time.Time `db:"date_posted" json:"date_posted"`
	LastEdited  time.Time `db:"last_edited" json:"last_edited"`
}

// MovieUpdate carries a partial update. Nil fields keep their prior values.
type MovieUpdate struct {
	Name        *string  `json:"name"`
	Director    *string  `json:"director"`
	IMDBScore   *float64 `json:"imdb_score"`
	Popularity  *float64 `json:"popularity"`
	MoviePoster *string  `json:"movie_poster"`
}
