package model

import "time"

// User is the local, unverified identity record. It carries no credential and
// grants nothing; it only labels the session.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}
