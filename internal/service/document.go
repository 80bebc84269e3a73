package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"docsign/internal/model"
	"docsign/internal/pagination"
	"docsign/internal/repository"
	"docsign/internal/storage"
)

var (
	ErrIDRequired           = errors.New("id is required")
	ErrNotFound             = errors.New("document not found")
	ErrOwnerNotFound        = errors.New("owner not found")
	ErrSignerNotFound       = errors.New("signer not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrNoUpdateFields       = errors.New("at least one of title or file must be provided")
	ErrSignatureRequired    = errors.New("signature is required")
	ErrSignerIDRequired     = errors.New("signer id is required")
	ErrReaderNil            = errors.New("file reader is nil")
	ErrUnsupportedMediaType = errors.New("only PDF files are accepted")
	ErrStorage              = errors.New("artifact storage failed")
)

// Artifact key prefixes inside the managed store.
const (
	contentPrefix   = "documents"
	signaturePrefix = "signatures"
)

// FileUpload carries one incoming payload through the service boundary.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// CreateDocumentInput holds the fields recognized by Create. File and
// OwnerID are optional; Title is required.
type CreateDocumentInput struct {
	Title   string
	File    *FileUpload
	OwnerID *string
}

// UpdateDocumentInput holds the optional fields recognized by Update.
// A nil field is absent and leaves the stored value untouched; at least
// one field must be present.
type UpdateDocumentInput struct {
	Title *string
	File  *FileUpload
}

// DocumentPage is the service-level DTO for one page of documents.
type DocumentPage struct {
	Items      []model.Document `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// DocumentService implements the document lifecycle: create/update/delete,
// the signature state transition, and pagination queries. It orchestrates
// the artifact store and document repository, owning the ordering that keeps
// records and artifacts consistent.
type DocumentService interface {
	// Create stores an optional PDF payload, then creates the record
	// referencing the stored key. A store failure aborts before record
	// creation; a record failure triggers a best-effort artifact cleanup.
	Create(ctx context.Context, in CreateDocumentInput) (*model.Document, error)

	// Update merges a partial patch (title and/or replacement file) into an
	// existing record. A replaced content artifact is deleted best-effort
	// after the record update succeeds.
	Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the document's artifacts (missing files tolerated),
	// then the record.
	Delete(ctx context.Context, id string) error

	// Sign applies a signature: stores the signature image, validates the
	// signer identity, and transitions the document to signed. Re-signing
	// overwrites the signer and signature and stays signed.
	Sign(ctx context.Context, id string, signature FileUpload, signerID string) (*model.Document, error)

	// ListPage returns one 1-based page of documents, most recent first.
	ListPage(ctx context.Context, page, limit int) (*DocumentPage, error)

	// ListSummaries returns id+title pairs, most recent first.
	ListSummaries(ctx context.Context) ([]model.DocumentSummary, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)
}

type documentService struct {
	store storage.Store
	docs  repository.DocumentRepository
	users repository.UserRepository
}

// NewDocumentService constructs the lifecycle service.
func NewDocumentService(store storage.Store, docs repository.DocumentRepository, users repository.UserRepository) DocumentService {
	return &documentService{store: store, docs: docs, users: users}
}

func (s *documentService) Create(ctx context.Context, in CreateDocumentInput) (*model.Document, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if in.OwnerID != nil {
		ok, err := s.users.Exists(ctx, *in.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("check owner: %w", err)
		}
		if !ok {
			return nil, ErrOwnerNotFound
		}
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    model.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.File != nil {
		key, err := s.storeContent(ctx, *in.File)
		if err != nil {
			return nil, err
		}
		doc.ContentFile = &key
	}

	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Compensating action: the stored artifact must not dangle without
		// a record. Cleanup failure is reported alongside the original error.
		if doc.ContentFile != nil {
			if delErr := s.store.Delete(ctx, *doc.ContentFile); delErr != nil {
				return nil, fmt.Errorf("create record: %v; artifact cleanup failed: %w", err, delErr)
			}
		}
		return nil, fmt.Errorf("create record: %w", err)
	}
	return stored, nil
}

func (s *documentService) Update(ctx context.Context, id string, in UpdateDocumentInput) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if in.Title == nil && in.File == nil {
		return nil, ErrNoUpdateFields
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, ErrTitleRequired
	}

	existing, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	patch := repository.DocumentPatch{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		patch.Title = &title
	}
	if in.File != nil {
		key, err := s.storeContent(ctx, *in.File)
		if err != nil {
			return nil, err
		}
		patch.ContentFile = &key
	}

	updated, err := s.docs.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		if patch.ContentFile != nil {
			// The new artifact must not dangle if the record update failed.
			_ = s.store.Delete(ctx, *patch.ContentFile)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update record: %w", err)
	}

	// Deletion-on-replace: the previous content artifact is unreachable once
	// the record references the new key. Removal is best-effort; a missing
	// file is already tolerated by the store.
	if patch.ContentFile != nil && existing.ContentFile != nil {
		_ = s.store.Delete(ctx, *existing.ContentFile)
	}

	return updated, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// Artifacts go first so a half-completed delete leaves a record that
	// still names its files, never an orphaned record pointing at nothing.
	// An already-absent artifact is a no-op in the store.
	if doc.ContentFile != nil {
		if err := s.store.Delete(ctx, *doc.ContentFile); err != nil {
			return fmt.Errorf("delete content artifact: %w: %w", ErrStorage, err)
		}
	}
	if doc.SignatureFile != nil {
		if err := s.store.Delete(ctx, *doc.SignatureFile); err != nil {
			return fmt.Errorf("delete signature artifact: %w: %w", ErrStorage, err)
		}
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *documentService) Sign(ctx context.Context, id string, signature FileUpload, signerID string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if signature.Reader == nil {
		return nil, ErrSignatureRequired
	}
	if signerID == "" {
		return nil, ErrSignerIDRequired
	}

	existing, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.users.Exists(ctx, signerID)
	if err != nil {
		return nil, fmt.Errorf("check signer: %w", err)
	}
	if !ok {
		return nil, ErrSignerNotFound
	}

	key := storage.ObjectKey(signaturePrefix, signature.Filename)
	if _, err := s.store.Put(ctx, key, signature.Reader, storage.PutObjectOptions{
		Size:        signature.Size,
		ContentType: signature.ContentType,
		Metadata:    map[string]string{"original-filename": signature.Filename},
	}); err != nil {
		return nil, fmt.Errorf("store signature: %w: %w", ErrStorage, err)
	}

	status := model.StatusSigned
	updated, err := s.docs.Update(ctx, id, repository.DocumentPatch{
		SignatureFile: &key,
		SignerID:      &signerID,
		Status:        &status,
	}, time.Now().UTC())
	if err != nil {
		_ = s.store.Delete(ctx, key)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update record: %w", err)
	}

	// Re-signing replaces the signature image; the previous one is removed
	// best-effort once the record points at the new key.
	if existing.SignatureFile != nil {
		_ = s.store.Delete(ctx, *existing.SignatureFile)
	}

	return updated, nil
}

func (s *documentService) ListPage(ctx context.Context, page, limit int) (*DocumentPage, error) {
	// Validate and derive the window before touching the database; the
	// total is unknown until the count query runs.
	w, err := pagination.Compute(page, limit, 0)
	if err != nil {
		return nil, err
	}

	res, err := s.docs.Page(ctx, repository.PageQuery{Limit: w.Take, Offset: w.Skip})
	if err != nil {
		return nil, err
	}

	w, _ = pagination.Compute(page, limit, res.Total)
	return &DocumentPage{
		Items:      res.Items,
		Total:      res.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: w.TotalPages,
	}, nil
}

func (s *documentService) ListSummaries(ctx context.Context) ([]model.DocumentSummary, error) {
	return s.docs.ListSummaries(ctx)
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// storeContent gates the media type, then streams the payload into the store
// under a fresh content key. Nothing is written for a rejected type.
func (s *documentService) storeContent(ctx context.Context, f FileUpload) (string, error) {
	if !storage.AcceptsPDF(f.ContentType) {
		return "", ErrUnsupportedMediaType
	}
	if f.Reader == nil {
		return "", ErrReaderNil
	}
	key := storage.ObjectKey(contentPrefix, f.Filename)
	if _, err := s.store.Put(ctx, key, f.Reader, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata:    map[string]string{"original-filename": f.Filename},
	}); err != nil {
		return "", fmt.Errorf("store content: %w: %w", ErrStorage, err)
	}
	return key, nil
}
