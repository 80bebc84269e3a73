package model

import "time"

// Document represents one managed file+metadata unit.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
//
// ContentFile and SignatureFile are weak references (storage keys) to artifacts
// owned by the artifact store. Deleting a record does not implicitly delete the
// bytes; the lifecycle service orchestrates both sides explicitly.
type Document struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	ContentFile   *string   `json:"content_file"`
	SignatureFile *string   `json:"signature_file"`
	SignerID      *string   `json:"signer_id"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Signed reports whether the document carries an applied signature.
func (d *Document) Signed() bool {
	return d.Status == StatusSigned
}

// DocumentSummary is the lightweight listing projection (id + title only).
type DocumentSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
