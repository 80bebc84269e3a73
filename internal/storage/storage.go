// Package storage contains the artifact store abstraction and its backends.
// Artifacts are binary payloads (PDF content, signature images) kept outside
// the structured record store. No component outside this package touches the
// backing filesystem or bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// ContentTypePDF is the only media type accepted for document content uploads.
const ContentTypePDF = "application/pdf"

// PutObjectOptions define optional parameters for storing artifacts.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the backend will buffer/chunk as supported.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored artifact.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Store is the artifact store contract. Methods use context and streaming
// readers; implementations confine side effects to their managed root.
type Store interface {
	// Put persists a payload under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an artifact's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an artifact by key. A missing key is a no-op, not an error.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a key is present, without fetching content.
	Exists(ctx context.Context, key string) (bool, error)
}

// AcceptsPDF reports whether a content type is allowed for document uploads.
// Only application/pdf passes; media type parameters (e.g. "; charset=x")
// do not change the verdict.
func AcceptsPDF(contentType string) bool {
	mt := strings.TrimSpace(contentType)
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return strings.EqualFold(mt, ContentTypePDF)
}

// ObjectKey derives a collision-resistant key for a new artifact:
// <prefix>/<epoch-millis>-<sanitized original name>. Two concurrent uploads
// with different original names never collide; a same-millisecond upload of
// an identically named file is a known narrow race.
func ObjectKey(prefix, originalName string) string {
	return path.Join(prefix, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeName(originalName)))
}

// SanitizeName strips directory components and characters unsafe for keys
// from a client-supplied filename.
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "artifact"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
