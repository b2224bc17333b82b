package repository

import (
	"errors"
	"testing"
)

func TestMovieRepository_CreateWithGenres(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)
	genreRepo := NewGenreRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	horror := createTestGenre(t, genreRepo, "Horror")
	thriller := createTestGenre(t, genreRepo, "Thriller")

	movie := createTestMovie(t, movieRepo, owner.ID, "Horror Night", 8.1, []int64{horror.ID, thriller.ID})

	ids, err := movieRepo.GenreIDs(movie.ID)
	if err != nil {
		t.Fatalf("GenreIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 join rows, got %d", len(ids))
	}
}

func TestMovieRepository_CreateWithoutGenres(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)

	owner := createTestUser(t, userRepo, "alice")

	// Both nil and empty genre lists are fine.
	movie := createTestMovie(t, movieRepo, owner.ID, "Solo", 5, nil)
	other := createTestMovie(t, movieRepo, owner.ID, "Duo", 6, []int64{})

	for _, m := range []int64{movie.ID, other.ID} {
		ids, err := movieRepo.GenreIDs(m)
		if err != nil {
			t.Fatalf("GenreIDs failed: %v", err)
		}
		if len(ids) != 0 {
			t.Errorf("movie %d: expected no join rows, got %d", m, len(ids))
		}
	}
}

func TestMovieRepository_CreateUnknownGenreRollsBack(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)
	genreRepo := NewGenreRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	horror := createTestGenre(t, genreRepo, "Horror")

	m := newMovie(owner.ID, "Doomed", 3)
	err := movieRepo.Create(m, []int64{horror.ID, 9999})
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("expected ErrConstraint for unknown genre, got %v", err)
	}

	// The movie insert must have been rolled back with the failed link.
	movies, err := movieRepo.Movies()
	if err != nil {
		t.Fatalf("Movies failed: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected no movies after rollback, got %d", len(movies))
	}
}

func TestMovieRepository_DuplicateGenreTag(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)
	genreRepo := NewGenreRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	horror := createTestGenre(t, genreRepo, "Horror")
	movie := createTestMovie(t, movieRepo, owner.ID, "Horror Night", 8.1, []int64{horror.ID})

	err := movieRepo.TagGenre(movie.ID, horror.ID)
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("expected ErrConstraint for duplicate tag, got %v", err)
	}
}

func TestMovieRepository_DefaultOrdering(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	createTestMovie(t, movieRepo, owner.ID, "Mid", 5.5, nil)
	createTestMovie(t, movieRepo, owner.ID, "Top", 9.9, nil)
	createTestMovie(t, movieRepo, owner.ID, "Low", 1.1, nil)

	movies, err := movieRepo.Movies()
	if err != nil {
		t.Fatalf("Movies failed: %v", err)
	}

	want := []string{"Top", "Mid", "Low"}
	if len(movies) != len(want) {
		t.Fatalf("expected %d movies, got %d", len(want), len(movies))
	}
	for i, name := range want {
		if movies[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, movies[i].Name)
		}
	}
}

func TestMovieRepository_SearchCaseInsensitive(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	createTestMovie(t, movieRepo, owner.ID, "Horror Night", 8.1, nil)
	createTestMovie(t, movieRepo, owner.ID, "Comedy Hour", 6.2, nil)

	movies, err := movieRepo.Search("HOR")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(movies) != 1 || movies[0].Name != "Horror Night" {
		t.Fatalf("expected Horror Night only, got %d results", len(movies))
	}

	movies, err = movieRepo.Search("night")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(movies) != 1 {
		t.Errorf("expected 1 result for lowercase substring, got %d", len(movies))
	}

	movies, err = movieRepo.Search("zzz")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected no results, got %d", len(movies))
	}
}

func TestMovieRepository_UpdatePreservesUntouchedColumns(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	movie := createTestMovie(t, movieRepo, owner.ID, "Original", 5, nil)
	posted := movie.DatePosted

	movie.Popularity = 9.9
	err := movieRepo.Update(movie)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := movieRepo.ByID(movie.ID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if updated.Name != "Original" {
		t.Errorf("name changed unexpectedly: %s", updated.Name)
	}
	if updated.Popularity != 9.9 {
		t.Errorf("expected popularity 9.9, got %v", updated.Popularity)
	}
	if !updated.DatePosted.Equal(posted) {
		t.Errorf("date_posted changed: %v -> %v", posted, updated.DatePosted)
	}
	if !updated.LastEdited.After(movie.LastEdited) {
		t.Errorf("expected last_edited to advance, got %v", updated.LastEdited)
	}
}

func TestMovieRepository_UpdateMissing(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	movie := createTestMovie(t, movieRepo, owner.ID, "Original", 5, nil)
	movie.ID = 9999

	err := movieRepo.Update(movie)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieRepository_DeleteCascadesJoinRows(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)
	genreRepo := NewGenreRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	horror := createTestGenre(t, genreRepo, "Horror")
	movie := createTestMovie(t, movieRepo, owner.ID, "Horror Night", 8.1, []int64{horror.ID})

	err := movieRepo.Delete(movie.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int
	err = database.Get(&count, `SELECT COUNT(*) FROM movie_genres WHERE movie_id = $1`, movie.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected join rows to cascade, found %d", count)
	}

	// The genre itself survives.
	_, err = genreRepo.ByID(horror.ID)
	if err != nil {
		t.Errorf("genre should survive movie deletion: %v", err)
	}
}

func TestMovieRepository_DeleteMissing(t *testing.T) {
	database := newTestDB(t)
	movieRepo := NewMovieRepository(database)

	err := movieRepo.Delete(42)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestGenreRepository_DefaultOrdering(t *testing.T) {
	database := newTestDB(t)
	genreRepo := NewGenreRepository(database)

	createTestGenre(t, genreRepo, "Thriller")
	createTestGenre(t, genreRepo, "Comedy")
	createTestGenre(t, genreRepo, "Horror")

	genres, err := genreRepo.Genres()
	if err != nil {
		t.Fatalf("Genres failed: %v", err)
	}

	want := []string{"Comedy", "Horror", "Thriller"}
	for i, name := range want {
		if genres[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, genres[i].Name)
		}
	}
}

func TestGenreRepository_DuplicateNameAllowed(t *testing.T) {
	database := newTestDB(t)
	genreRepo := NewGenreRepository(database)

	createTestGenre(t, genreRepo, "Horror")
	createTestGenre(t, genreRepo, "Horror")

	genres, err := genreRepo.Genres()
	if err != nil {
		t.Fatalf("Genres failed: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("genre names are not unique, expected 2 rows, got %d", len(genres))
	}
}

func TestGenreRepository_DeleteCascadesJoinRows(t *testing.T) {
	database := newTestDB(t)
	userRepo := NewUserRepository(database)
	movieRepo := NewMovieRepository(database)
	genreRepo := NewGenreRepository(database)

	owner := createTestUser(t, userRepo, "alice")
	horror := createTestGenre(t, genreRepo, "Horror")
	movie := createTestMovie(t, movieRepo, owner.ID, "Horror Night", 8.1, []int64{horror.ID})

	err := genreRepo.Delete(horror.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	ids, err := movieRepo.GenreIDs(movie.ID)
	if err != nil {
		t.Fatalf("GenreIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected join rows to cascade, found %d", len(ids))
	}

	// The movie itself survives.
	_, err = movieRepo.ByID(movie.ID)
	if err != nil {
		t.Errorf("movie should survive genre deletion: %v", err)
	}
}
