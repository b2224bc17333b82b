package repository

import (
	"database/sql"
	"errors"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGenreNotFound = errors.New("genre not found")
)

type GenreRepository interface {
	Create(genre *model.Genre) error
	ByID(id int64) (*model.Genre, error)
	Genres() ([]*model.Genre, error)
	Delete(id int64) error
}

type genreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *model.Genre) error {
	query := `INSERT INTO genres (name) VALUES ($1)`

	result, err := r.db.Exec(query, genre.Name)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConstraint
		}
		return err
	}

	genre.ID, err = result.LastInsertId()
	return err
}

func (r *genreRepository) ByID(id int64) (*model.Genre, error) {
	genre := &model.Genre{}
	query := `SELECT * FROM genres WHERE id = $1`

	err := r.db.Get(genre, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrGenreNotFound
	}

	return genre, err
}

func (r *genreRepository) Genres() ([]*model.Genre, error) {
	var genres []*model.Genre
	query := `SELECT * FROM genres ORDER BY name ASC`

	err := r.db.Select(&genres, query)
	if err != nil {
		return nil, err
	}

	return genres, nil
}

func (r *genreRepository) Delete(id int64) error {
	query := `DELETE FROM genres WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGenreNotFound
	}

	return nil
}
