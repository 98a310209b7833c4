package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// JSONStore is a file-backed JSON cache rooted at a single directory.
// A zero TTL means entries never expire.
type JSONStore struct {
	Root string // e.g. "fpl_cache"
	TTL  time.Duration
}

func NewJSONStore(root string, ttl time.Duration) *JSONStore {
	return &JSONStore{Root: root, TTL: ttl}
}

func (s *JSONStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

// Fresh reports whether rel exists and is within its TTL.
func (s *JSONStore) Fresh(rel string) bool {
	info, err := os.Stat(s.Path(rel))
	if err != nil {
		return false
	}
	if s.TTL <= 0 {
		return true
	}
	return time.Since(info.ModTime()) < s.TTL
}

func (s *JSONStore) WriteRaw(rel string, body []byte, pretty bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if pretty {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *JSONStore) ReadRaw(rel string) ([]byte, error) {
	path := s.Path(rel)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return b, err
}

// WriteJSON marshals v with indentation and writes it to rel.
func (s *JSONStore) WriteJSON(rel string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return s.WriteRaw(rel, b, false)
}

// ReadJSON reads rel and unmarshals it into v.
func (s *JSONStore) ReadJSON(rel string, v any) error {
	b, err := s.ReadRaw(rel)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
