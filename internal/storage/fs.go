package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FSStore keeps blobs on the local filesystem under a root directory.
// Keys are relative paths chosen by the caller (e.g. "<batch_id>/<uuid>.pdf").
type FSStore struct {
	root   string
	secret []byte
	logger *slog.Logger
}

func NewFSStore(root, urlSecret string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{root: abs, secret: []byte(urlSecret), logger: logger}, nil
}

func (s *FSStore) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *FSStore) Store(ctx context.Context, key string, data []byte, contentType string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create blob dir: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		s.logger.Error("blob store failed", "key", key, "error", err)
		return fmt.Errorf("write blob: %w", err)
	}
	s.logger.Debug("blob stored", "key", key, "size", len(data), "content_type", contentType)
	return nil
}

func (s *FSStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		s.logger.Error("blob fetch failed", "key", key, "error", err)
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (s *FSStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// SignedDownloadURL returns a relative download URL carrying an expiry and
// an HMAC over key+expiry, verifiable by whatever HTTP layer serves blobs.
func (s *FSStore) SignedDownloadURL(key string, ttl time.Duration) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	exp := time.Now().Add(ttl).Unix()
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", key, exp)
	sig := hex.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("/blobs/%s?exp=%s&sig=%s",
		url.PathEscape(key), strconv.FormatInt(exp, 10), sig), nil
}

// VerifySignedURL checks the exp/sig query params produced by SignedDownloadURL.
func (s *FSStore) VerifySignedURL(key, expStr, sig string, now time.Time) bool {
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil || now.Unix() > exp {
		return false
	}
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", key, exp)
	expect := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expect), []byte(sig))
}
