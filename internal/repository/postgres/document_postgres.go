package postgres

import (
	"context"
	"database/sql"
	"time"

	"docsign/internal/model"
	"docsign/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, content_file, signature_file, signer_id, status, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.ContentFile,
		&d.SignatureFile,
		&d.SignerID,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, title, content_file, signature_file, signer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.ContentFile,
		doc.SignatureFile,
		doc.SignerID,
		doc.Status,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// Update merges a partial patch into the stored row. COALESCE keeps the
// existing column value for every nil patch field; updated_at is always set.
func (r *DocumentPostgres) Update(ctx context.Context, id string, patch repository.DocumentPatch, now time.Time) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET title          = COALESCE($2, title),
		    content_file   = COALESCE($3, content_file),
		    signature_file = COALESCE($4, signature_file),
		    signer_id      = COALESCE($5, signer_id),
		    status         = COALESCE($6, status),
		    updated_at     = $7
		WHERE id = $1
		RETURNING ` + documentColumns
	var status *string
	if patch.Status != nil {
		s := patch.Status.String()
		status = &s
	}
	row := r.db.QueryRowContext(ctx, q,
		id,
		patch.Title,
		patch.ContentFile,
		patch.SignatureFile,
		patch.SignerID,
		status,
		now,
	)
	return scanDocument(row)
}

// Delete removes a document by ID, reporting sql.ErrNoRows for a missing row.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Page returns documents using LIMIT/OFFSET pagination and a total count.
// Ordering is a stable total order: created_at descending, id descending.
func (r *DocumentPostgres) Page(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{
		Items: items,
		Total: total,
	}, nil
}

// ListSummaries returns id+title pairs, most recent first.
func (r *DocumentPostgres) ListSummaries(ctx context.Context) ([]model.DocumentSummary, error) {
	const q = `
		SELECT id, title
		FROM documents
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.DocumentSummary, 0)
	for rows.Next() {
		var s model.DocumentSummary
		if err := rows.Scan(&s.ID, &s.Title); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
