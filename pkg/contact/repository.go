package contact

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Repository performs the contact book operations against a Store.
//
// Every method absorbs its own failures: errors and panics are logged and the
// method returns nil. Callers never receive an error value.
type Repository struct {
	store  Store
	logger *slog.Logger
	newID  func() string
}

// Option configures a Repository.
type Option func(*Repository)

// WithIDGenerator replaces NewID as the source of ids for Add.
func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) { r.newID = gen }
}

// NewRepository creates a repository over store. A nil logger discards logs.
func NewRepository(store Store, logger *slog.Logger, opts ...Option) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Repository{
		store:  store,
		logger: logger,
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns all contacts in store order, or nil if the store is missing,
// unreadable or malformed.
func (r *Repository) List(ctx context.Context) (contacts []Contact) {
	defer r.recoverPanic("list", &contacts)

	contacts, err := r.store.Load(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list contacts", "err", err)
		return nil
	}
	return contacts
}

// Get returns the contact with the given id, or nil.
func (r *Repository) Get(ctx context.Context, id string) (found *Contact) {
	defer r.recoverPanic("get", &found)

	contacts := r.List(ctx)
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i]
		}
	}

	r.logger.WarnContext(ctx, "contact not found", "id", id, "err", ErrNotFound)
	return nil
}

// Remove deletes the contact with the given id, rewrites the store and
// returns the deleted contact. It returns nil, leaving the store untouched,
// when the store cannot be read or no contact has that id.
func (r *Repository) Remove(ctx context.Context, id string) (removed *Contact) {
	defer r.recoverPanic("remove", &removed)

	contacts := r.List(ctx)
	if contacts == nil {
		r.logger.WarnContext(ctx, "nothing to remove", "id", id, "err", ErrEmptyStore)
		return nil
	}

	index := -1
	for i := range contacts {
		if contacts[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		r.logger.WarnContext(ctx, "contact not found", "id", id, "err", ErrNotFound)
		return nil
	}

	target := contacts[index]
	if err := r.store.Save(ctx, slices.Delete(contacts, index, index+1)); err != nil {
		r.logger.ErrorContext(ctx, "failed to save contacts", "err", err)
		return nil
	}

	r.logger.InfoContext(ctx, "contact removed", "id", id)
	return &target
}

// Add validates c, appends it to the store under a fresh id and returns the
// stored contact. It returns nil if any field is empty or malformed, or the
// store cannot be written. An unreadable store is treated as empty and
// overwritten.
func (r *Repository) Add(ctx context.Context, c NewContact) (added *Contact) {
	defer r.recoverPanic("add", &added)

	if res := Check(c); !res.Success {
		r.logger.WarnContext(ctx, "contact rejected",
			"err", ErrInvalid,
			"fields", res.Fields(),
			"issues", res.String(),
		)
		return nil
	}

	contacts := r.List(ctx)
	if contacts == nil {
		contacts = []Contact{}
	}

	created := Contact{
		ID:    uniqueID(r.newID, contacts),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	contacts = append(contacts, created)
	if err := r.store.Save(ctx, contacts); err != nil {
		r.logger.ErrorContext(ctx, "failed to save contacts", "err", err)
		return nil
	}

	r.logger.InfoContext(ctx, "contact added", "id", created.ID)
	return &created
}

// recoverPanic turns a panic inside op into a logged error and a zero result.
func (r *Repository) recoverPanic(op string, result any) {
	v := recover()
	if v == nil {
		return
	}
	r.logger.Error("panic occurred", "op", op, "recovered", fmt.Sprint(v))
	switch p := result.(type) {
	case *[]Contact:
		*p = nil
	case **Contact:
		*p = nil
	}
}
