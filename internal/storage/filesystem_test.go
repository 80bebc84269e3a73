package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"docsign/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	st, err := NewFilesystem(config.StorageConfig{RootDir: root})
	require.NoError(t, err)
	return st, root
}

func TestFilesystem_PutGetRoundTrip(t *testing.T) {
	st, root := newTestStore(t)
	ctx := context.Background()

	// Root must not exist before the first write (lazy creation).
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))

	info, err := st.Put(ctx, "documents/1-contract.pdf", strings.NewReader("%PDF-1.4 data"), PutObjectOptions{
		ContentType: ContentTypePDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "documents/1-contract.pdf", info.Key)
	assert.Equal(t, int64(13), info.Size)

	rc, got, err := st.Get(ctx, "documents/1-contract.pdf")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 data", string(data))
	assert.Equal(t, int64(13), got.Size)
}

func TestFilesystem_DeleteIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.Put(ctx, "documents/x.pdf", strings.NewReader("x"), PutObjectOptions{})
	require.NoError(t, err)

	assert.NoError(t, st.Delete(ctx, "documents/x.pdf"))
	// Missing artifact is a no-op, not an error.
	assert.NoError(t, st.Delete(ctx, "documents/x.pdf"))
	assert.NoError(t, st.Delete(ctx, "never/existed.pdf"))
}

func TestFilesystem_Exists(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := st.Exists(ctx, "signatures/missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = st.Put(ctx, "signatures/s.png", strings.NewReader("png"), PutObjectOptions{})
	require.NoError(t, err)

	ok, err = st.Exists(ctx, "signatures/s.png")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFilesystem_RejectsTraversal(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "/abs/path", "a/../../b"} {
		_, err := st.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("documents", "My Report (final).pdf")
	assert.Regexp(t, regexp.MustCompile(`^documents/\d+-My_Report__final_\.pdf$`), key)

	// Directory components in client names are stripped.
	key = ObjectKey("signatures", "../../etc/passwd")
	assert.Regexp(t, regexp.MustCompile(`^signatures/\d+-passwd$`), key)
}

func TestAcceptsPDF(t *testing.T) {
	assert.True(t, AcceptsPDF("application/pdf"))
	assert.True(t, AcceptsPDF("Application/PDF"))
	assert.True(t, AcceptsPDF("application/pdf; charset=binary"))
	assert.False(t, AcceptsPDF("text/plain"))
	assert.False(t, AcceptsPDF("image/png"))
	assert.False(t, AcceptsPDF(""))
}
