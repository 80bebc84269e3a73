package model

import "fmt"

// Status is the closed lifecycle state of a document.
// Only two states exist: a document starts as draft and transitions to
// signed exactly once. Re-signing overwrites the signer and signature but
// never re-enters draft.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusSigned Status = "signed"
)

// ParseStatus validates an external text value against the closed enumeration.
// Anything outside {draft, signed} is rejected rather than stored.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSigned:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid document status %q", s)
}

func (s Status) String() string {
	return string(s)
}
