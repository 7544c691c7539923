package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store persists uploaded media and returns the public URL it is served at.
type Store interface {
	Save(filename string, src io.Reader) (string, error)
	Remove(publicURL string) error
}

// DiskStore writes uploads under Root and serves them under URLPrefix
// (e.g. Root "./uploads", URLPrefix "/uploads").
type DiskStore struct {
	Root      string
	URLPrefix string
}

func NewDiskStore(root, urlPrefix string) *DiskStore {
	return &DiskStore{Root: root, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Save writes the upload with a timestamp prefix so repeated uploads of the
// same filename never clobber each other. Transient filesystem errors are
// retried a couple of times.
func (s *DiskStore) Save(filename string, src io.Reader) (string, error) {
	name := cleanFilename(filename)
	name = fmt.Sprintf("%d_%s", time.Now().UnixNano(), name)

	if err := os.MkdirAll(s.Root, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.Root, name)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		lastErr = writeFile(path, src)
		if lastErr == nil {
			return s.URLPrefix + "/" + name, nil
		}
		if !retryable(lastErr) || attempt == 3 {
			break
		}
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	return "", fmt.Errorf("save upload %s: %w", name, lastErr)
}

// Remove deletes the file behind a public URL previously returned by Save.
// Unknown URLs are a no-op.
func (s *DiskStore) Remove(publicURL string) error {
	if !strings.HasPrefix(publicURL, s.URLPrefix+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(publicURL, s.URLPrefix+"/"))
	err := os.Remove(filepath.Join(s.Root, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	return dst.Close()
}

func retryable(err error) bool {
	return !os.IsPermission(err)
}

// cleanFilename keeps the base name only and replaces spaces, matching the
// URLs the storefront generates.
func cleanFilename(filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
