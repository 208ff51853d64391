// Package flags holds the client-local per-day completion flags. The store
// is the sole source of "already done" state; when it is unavailable,
// everything degrades to "not yet done" rather than failing the page.
package flags

import (
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Done is the literal value written for a set flag.
const Done = "1"

// Store is the minimal key-value contract the widgets persist through. Get
// returns "" for absent keys and on any read failure.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Remove(key string) error
}

// Open returns a disk-backed Store rooted at basePath, or the in-memory
// fallback when no path is configured.
func Open(basePath string) Store {
	if basePath == "" {
		return Memory()
	}
	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	})}
}

type diskStore struct {
	d *diskv.Diskv
}

func (s *diskStore) Get(key string) string {
	val, err := s.d.Read(key)
	if err != nil {
		return ""
	}
	return string(val)
}

func (s *diskStore) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *diskStore) Remove(key string) error {
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Memory returns a Store that lives only for this process. Used by tests and
// as the degraded mode when the disk store cannot be opened.
func Memory() Store {
	return &memStore{m: make(map[string]string)}
}

type memStore struct {
	mu sync.Mutex
	m  map[string]string
}

func (s *memStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key]
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *memStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
