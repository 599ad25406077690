package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FSStore {
	t.Helper()
	s, err := NewFSStore(t.TempDir(), "test-secret", nil)
	require.NoError(t, err)
	return s
}

func TestStoreFetchDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Store(ctx, "batch/one.pdf", []byte("hello"), "application/pdf"))

	got, err := s.Fetch(ctx, "batch/one.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	require.NoError(t, s.Delete(ctx, "batch/one.pdf"))
	_, err = s.Fetch(ctx, "batch/one.pdf")
	require.Error(t, err)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, "batch/one.pdf"))
}

func TestStoreRejectsTraversalKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Store(ctx, "../escape", []byte("x"), "text/plain")
	require.Error(t, err)

	_, err = s.Fetch(ctx, "a/../../escape")
	require.Error(t, err)
}

func TestSignedDownloadURLRoundTrip(t *testing.T) {
	s := newTestStore(t)

	signed, err := s.SignedDownloadURL("batch/cv.pdf", time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	key := strings.TrimPrefix(u.Path, "/blobs/")
	key, err = url.PathUnescape(key)
	require.NoError(t, err)

	q := u.Query()
	assert.True(t, s.VerifySignedURL(key, q.Get("exp"), q.Get("sig"), time.Now()))
	assert.False(t, s.VerifySignedURL(key, q.Get("exp"), q.Get("sig"), time.Now().Add(2*time.Minute)), "expired")
	assert.False(t, s.VerifySignedURL("other", q.Get("exp"), q.Get("sig"), time.Now()), "key mismatch")
}
