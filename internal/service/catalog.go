package service

import (
	"time"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/repository"
)

// CatalogService implements the movie catalog operations on top of the
// movie and genre repositories.
type CatalogService struct {
	movieRepository repository.MovieRepository
	genreRepository repository.GenreRepository
}

func NewCatalogService(movieRepository repository.MovieRepository, genreRepository repository.GenreRepository) *CatalogService {
	return &CatalogService{
		movieRepository: movieRepository,
		genreRepository: genreRepository,
	}
}

func (s *CatalogService) Movies() ([]*model.Movie, error) {
	return s.movieRepository.Movies()
}

func (s *CatalogService) Movie(id int64) (*model.Movie, error) {
	return s.movieRepository.ByID(id)
}

// AddMovie creates a movie owned by ownerID and tags it with the given
// genres. genreIDs may be nil; ownership always derives from the
// authenticated caller, never from client input.
func (s *CatalogService) AddMovie(ownerID int64, name string, director *string, imdbScore, popularity float64, moviePoster string, genreIDs []int64) (*model.Movie, error) {
	if genreIDs == nil {
		genreIDs = []int64{}
	}

	now := time.Now().UTC()
	movie := &model.Movie{
		Name:        name,
		Director:    director,
		IMDBScore:   imdbScore,
		Popularity:  popularity,
		MoviePoster: moviePoster,
		UserID:      ownerID,
		DatePosted:  now,
		LastEdited:  now,
	}

	err := s.movieRepository.Create(movie, genreIDs)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// UpdateMovie applies a partial update. Fields left nil in upd keep their
// prior values exactly.
func (s *CatalogService) UpdateMovie(id int64, upd *model.MovieUpdate) (*model.Movie, error) {
	movie, err := s.movieRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		movie.Name = *upd.Name
	}
	if upd.Director != nil {
		movie.Director = upd.Director
	}
	if upd.IMDBScore != nil {
		movie.IMDBScore = *upd.IMDBScore
	}
	if upd.Popularity != nil {
		movie.Popularity = *upd.Popularity
	}
	if upd.MoviePoster != nil {
		movie.MoviePoster = *upd.MoviePoster
	}

	err = s.movieRepository.Update(movie)
	if err != nil {
		return nil, err
	}

	return s.movieRepository.ByID(id)
}

func (s *CatalogService) DeleteMovie(id int64) error {
	return s.movieRepository.Delete(id)
}

func (s *CatalogService) SearchMovies(query string) ([]*model.Movie, error) {
	return s.movieRepository.Search(query)
}

func (s *CatalogService) Genres() ([]*model.Genre, error) {
	return s.genreRepository.Genres()
}

func (s *CatalogService) AddGenre(name string) (*model.Genre, error) {
	genre := &model.Genre{Name: name}

	err := s.genreRepository.Create(genre)
	if err != nil {
		return nil, err
	}

	return genre, nil
}
