// Package contact implements the contact book: the record types, field
// validation, and a repository doing read-modify-write over a JSON store.
package contact

import "context"

// Contact is a stored contact. ID is the only identity key.
type Contact struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// NewContact holds the user-supplied fields of a contact that has no ID yet.
type NewContact struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

// Store is the persistence the repository reads from and rewrites.
// *store.File[Contact] implements it.
type Store interface {
	// Load returns every stored contact in insertion order.
	Load(ctx context.Context) ([]Contact, error)

	// Save replaces the stored contacts.
	Save(ctx context.Context, contacts []Contact) error
}
