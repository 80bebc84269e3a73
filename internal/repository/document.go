package repository

import (
	"context"
	"time"

	"docsign/internal/model"
)

// DocumentRepository defines data access for document records using SQL
// queries only. No business logic here; strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID (sql.ErrNoRows when absent).
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// Update applies a partial-field patch. Nil patch fields keep the
	// existing column values; updated_at is always refreshed to now.
	// Returns sql.ErrNoRows when the row does not exist.
	Update(ctx context.Context, id string, patch DocumentPatch, now time.Time) (*model.Document, error)

	// Delete removes a document by ID. Returns sql.ErrNoRows when the row
	// does not exist so callers can surface NotFound.
	Delete(ctx context.Context, id string) error

	// Page returns one window of documents ordered by created_at descending
	// (ties broken by id) plus the total row count.
	Page(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// ListSummaries returns id+title pairs in the same order as Page, for
	// lightweight enumeration without payload references.
	ListSummaries(ctx context.Context) ([]model.DocumentSummary, error)
}

// UserRepository is the identity-lookup collaborator: it answers whether a
// referenced signer/owner exists. Credential concerns live elsewhere.
type UserRepository interface {
	// Exists reports whether a user with the given ID is present.
	Exists(ctx context.Context, id string) (bool, error)

	// FindByID returns a user by ID (sql.ErrNoRows when absent).
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// DocumentPatch is an explicit optional-field patch: a nil field is absent
// and leaves the stored value untouched, never implicitly nulled. Signature
// fields travel together with the status transition during signing.
type DocumentPatch struct {
	Title         *string
	ContentFile   *string
	SignatureFile *string
	SignerID      *string
	Status        *model.Status
}

// Empty reports whether the patch carries no fields at all.
func (p DocumentPatch) Empty() bool {
	return p.Title == nil && p.ContentFile == nil && p.SignatureFile == nil &&
		p.SignerID == nil && p.Status == nil
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
