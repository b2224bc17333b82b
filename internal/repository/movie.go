package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
)

type MovieRepository interface {
	// Create inserts the movie and one join row per genre id in a single
	// transaction. A failing genre link rolls back the movie as well.
	Create(movie *model.Movie, genreIDs []int64) error
	ByID(id int64) (*model.Movie, error)
	Movies() ([]*model.Movie, error)
	Search(query string) ([]*model.Movie, error)
	Update(movie *model.Movie) error
	Delete(id int64) error
	TagGenre(movieID, genreID int64) error
	GenreIDs(movieID int64) ([]int64, error)
}

type movieRepository struct {
	db *sqlx.DB
}

func NewMovieRepository(db *sqlx.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(movie *model.Movie, genreIDs []int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO movies (name, director, imdb_score, popularity, movie_poster, user_id, date_posted, last_edited)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	result, err := tx.Exec(query,
		movie.Name,
		movie.Director,
		movie.IMDBScore,
		movie.Popularity,
		movie.MoviePoster,
		movie.UserID,
		movie.DatePosted,
		movie.LastEdited,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("movie %q: %w", movie.Name, ErrConstraint)
		}
		return err
	}

	movieID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, genreID := range genreIDs {
		_, err = tx.Exec(`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`, movieID, genreID)
		if err != nil {
			if isConstraintViolation(err) {
				return fmt.Errorf("genre %d: %w", genreID, ErrConstraint)
			}
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	movie.ID = movieID
	return nil
}

func (r *movieRepository) ByID(id int64) (*model.Movie, error) {
	movie := &model.Movie{}
	query := `SELECT * FROM movies WHERE id = $1`

	err := r.db.Get(movie, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrMovieNotFound
	}

	return movie, err
}

func (r *movieRepository) Movies() ([]*model.Movie, error) {
	var movies []*model.Movie
	query := `SELECT * FROM movies ORDER BY popularity DESC`

	err := r.db.Select(&movies, query)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) Search(search string) ([]*model.Movie, error) {
	var movies []*model.Movie
	query := `SELECT * FROM movies
	          WHERE LOWER(name) LIKE '%' || LOWER($1) || '%'
	          ORDER BY popularity DESC`

	err := r.db.Select(&movies, query, search)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) Update(movie *model.Movie) error {
	query := `UPDATE movies
	          SET name = $1, director = $2, imdb_score = $3, popularity = $4, movie_poster = $5, last_edited = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		movie.Name,
		movie.Director,
		movie.IMDBScore,
		movie.Popularity,
		movie.MoviePoster,
		time.Now().UTC(),
		movie.ID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("movie %q: %w", movie.Name, ErrConstraint)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMovieNotFound
	}

	return nil
}

func (r *movieRepository) Delete(id int64) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMovieNotFound
	}

	return nil
}

func (r *movieRepository) TagGenre(movieID, genreID int64) error {
	query := `INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`

	_, err := r.db.Exec(query, movieID, genreID)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("movie %d genre %d: %w", movieID, genreID, ErrConstraint)
		}
		return err
	}

	return nil
}

func (r *movieRepository) GenreIDs(movieID int64) ([]int64, error) {
	var ids []int64
	query := `SELECT genre_id FROM movie_genres WHERE movie_id = $1 ORDER BY genre_id ASC`

	err := r.db.Select(&ids, query, movieID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
