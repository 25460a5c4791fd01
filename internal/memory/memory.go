// Package memory implements the write_memory/read_memory/list_memories/
// delete_memory tool family, an append-mostly JSON array persisted
// through the state store.
package memory

import (
	"fmt"
	"time"

	"github.com/standardbeagle/serena-mcp/internal/statestore"
)

const storeFile = "memories.json"

// Entry is one stored memory.
type Entry struct {
	ID        string                 `json:"id"`
	Namespace string                 `json:"namespace"`
	Content   string                 `json:"content"`
	Tags      []string               `json:"tags,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at,omitempty"`
}

// Store wraps the persisted memory array. Now is injected so callers
// can stamp timestamps deterministically; production code passes
// time.Now.
type Store struct {
	Now func() time.Time
}

func New(now func() time.Time) *Store {
	return &Store{Now: now}
}

func (s *Store) load() ([]Entry, error) {
	var entries []Entry
	if err := statestore.Load(storeFile, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) save(entries []Entry) error {
	return statestore.Save(storeFile, entries)
}

// Write creates a new entry, or updates an existing one with the same
// id and namespace in place, stamping UpdatedAt.
func (s *Store) Write(id, namespace, content string, tags []string, metadata map[string]interface{}) (Entry, error) {
	entries, err := s.load()
	if err != nil {
		return Entry{}, err
	}

	now := s.Now()
	for i, e := range entries {
		if e.ID == id && e.Namespace == namespace {
			entries[i].Content = content
			entries[i].Tags = tags
			entries[i].Metadata = metadata
			entries[i].UpdatedAt = &now
			if err := s.save(entries); err != nil {
				return Entry{}, err
			}
			return entries[i], nil
		}
	}

	entry := Entry{
		ID:        id,
		Namespace: namespace,
		Content:   content,
		Tags:      tags,
		Metadata:  metadata,
		CreatedAt: now,
	}
	entries = append(entries, entry)
	if err := s.save(entries); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Read returns the entry for id/namespace, or an error if none exists.
func (s *Store) Read(id, namespace string) (Entry, error) {
	entries, err := s.load()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id && e.Namespace == namespace {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("memory %q not found in namespace %q", id, namespace)
}

// List returns every entry, optionally filtered to one namespace.
func (s *Store) List(namespace string) ([]Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	if namespace == "" {
		return entries, nil
	}
	var out []Entry
	for _, e := range entries {
		if e.Namespace == namespace {
			out = append(out, e)
		}
	}
	return out, nil
}

// Delete removes the entry for id/namespace. Reports whether an entry
// was actually removed.
func (s *Store) Delete(id, namespace string) (bool, error) {
	entries, err := s.load()
	if err != nil {
		return false, err
	}
	for i, e := range entries {
		if e.ID == id && e.Namespace == namespace {
			entries = append(entries[:i], entries[i+1:]...)
			if err := s.save(entries); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
