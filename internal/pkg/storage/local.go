package storage

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// LocalStorage keeps blobs on the local disk. Access URLs carry an HMAC
// signature over (blobName, expiry) so they expire like SAS URLs do.
type LocalStorage struct {
	basePath string
	baseURL  string // e.g. "http://localhost:8080/uploads"
	signKey  []byte
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Per-process signing key. Restarting invalidates outstanding URLs,
	// which is acceptable for 10-minute links.
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
		signKey:  key,
	}, nil
}

func (s *LocalStorage) fullPath(blobName string) (string, error) {
	cleanPath := filepath.Clean(blobName)
	fullPath := filepath.Join(s.basePath, cleanPath)

	// Reject directory traversal
	if !strings.HasPrefix(fullPath, s.basePath) {
		return "", fmt.Errorf("invalid blob name: %s", blobName)
	}
	return fullPath, nil
}

func (s *LocalStorage) Upload(ctx context.Context, file io.Reader, blobName string, contentType string) (string, error) {
	fullPath, err := s.fullPath(blobName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, filepath.Clean(blobName)), nil
}

func (s *LocalStorage) Download(ctx context.Context, blobName string) (io.ReadCloser, error) {
	fullPath, err := s.fullPath(blobName)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("blob not found: %s", blobName)
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}

	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, blobName string) error {
	fullPath, err := s.fullPath(blobName)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil // already gone
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

func (s *LocalStorage) GetURL(ctx context.Context, blobName string, expiry time.Duration) (string, error) {
	cleanPath := filepath.Clean(blobName)
	expiresAt := time.Now().Add(expiry).Unix()

	mac := hmac.New(sha256.New, s.signKey)
	fmt.Fprintf(mac, "%s:%d", cleanPath, expiresAt)
	sig := hex.EncodeToString(mac.Sum(nil))

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expiresAt, 10))
	q.Set("sig", sig)

	return fmt.Sprintf("%s/%s?%s", s.baseURL, cleanPath, q.Encode()), nil
}

func (s *LocalStorage) Exists(ctx context.Context, blobName string) (bool, error) {
	fullPath, err := s.fullPath(blobName)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
