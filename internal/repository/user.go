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
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id int64) (*model.User, error)
	ByUsername(username string) (*model.User, error)
	Users() ([]*model.User, error)
	Update(user *model.User) error
	UpdateLastLogin(id int64, t time.Time) error
	Delete(id int64) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (username, email, full_name, password_hash, disabled, date_joined, last_logged_in)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	result, err := r.db.Exec(query,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Disabled,
		user.DateJoined,
		user.LastLoggedIn,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("username %q: %w", user.Username, ErrConstraint)
		}
		return err
	}

	user.ID, err = result.LastInsertId()
	return err
}

func (r *userRepository) ByID(id int64) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) Users() ([]*model.User, error) {
	var users []*model.User
	query := `SELECT * FROM users ORDER BY username ASC`

	err := r.db.Select(&users, query)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Update rewrites the mutable columns. date_joined is never touched after
// creation; last_logged_in is bumped on every write to the row.
func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users
	          SET username = $1, email = $2, full_name = $3, password_hash = $4, disabled = $5, last_logged_in = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Disabled,
		time.Now().UTC(),
		user.ID,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("username %q: %w", user.Username, ErrConstraint)
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdateLastLogin(id int64, t time.Time) error {
	query := `UPDATE users SET last_logged_in = $1 WHERE id = $2`

	_, err := r.db.Exec(query, t, id)
	return err
}

func (r *userRepository) Delete(id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
