package model

import (
	"time"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        *string   `db:"email" json:"email,omitempty"`
	FullName     *string   `db:"full_name" json:"full_name,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Disabled     bool      `db:"disabled" json:"disabled"`
	DateJoined   time.Time `db:"date_joined" json:"date_joined"`
	LastLoggedIn time.Time `db:"last_logged_in" json:"last_logged_in"`
}
