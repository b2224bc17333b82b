package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cinelog/cinelog/internal/db"
	"github.com/cinelog/cinelog/internal/model"
	"github.com/jmoiron/sqlx"
)

// newTestDB opens a throwaway sqlite database with the full schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"

	database, err := db.Init("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to init database: %v", err)
	}
	t.Cleanup(func() {
		db.Close(database)
	})

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func createTestUser(t *testing.T, repo UserRepository, username string) *model.User {
	t.Helper()

	now := time.Now().UTC()
	user := &model.User{
		Username:     username,
		PasswordHash: "x",
		Disabled:     false,
		DateJoined:   now,
		LastLoggedIn: now,
	}

	err := repo.Create(user)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}

	return user
}

func newMovie(userID int64, name string, popularity float64) *model.Movie {
	now := time.Now().UTC()
	return &model.Movie{
		Name:       name,
		IMDBScore:  7.5,
		Popularity: popularity,
		UserID:     userID,
		DatePosted: now,
		LastEdited: now,
	}
}

func createTestMovie(t *testing.T, repo MovieRepository, userID int64, name string, popularity float64, genreIDs []int64) *model.Movie {
	t.Helper()

	movie := newMovie(userID, name, popularity)
	err := repo.Create(movie, genreIDs)
	if err != nil {
		t.Fatalf("failed to create movie %s: %v", name, err)
	}

	return movie
}

func createTestGenre(t *testing.T, repo GenreRepository, name string) *model.Genre {
	t.Helper()

	genre := &model.Genre{Name: name}
	err := repo.Create(genre)
	if err != nil {
		t.Fatalf("failed to create genre %s: %v", name, err)
	}

	return genre
}
