package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// User is the client-side record of the authenticated admin: the account
// minus its secret, plus the capability flags the server derived at login.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLogin   *time.Time `json:"lastLogin"`
	Permissions []string   `json:"permissions"`
	CanEdit     bool       `json:"canEdit"`
	CanCreate   bool       `json:"canCreate"`
	CanDelete   bool       `json:"canDelete"`
}

// userRecordName is the fixed key the durable user record lives under.
const userRecordName = "user.json"

// Store is the durable half of the client session: one JSON-serialized user
// record under a fixed key. Load returns (nil, nil) when no record exists.
type Store interface {
	Load() (*User, error)
	Save(user *User) error
	Clear() error
}

// FileStore keeps the user record as a JSON file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, userRecordName)
}

// Load reads the stored user record, or (nil, nil) when absent.
func (s *FileStore) Load() (*User, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read user record: %w", err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return &user, nil
}

// Save writes the user record, creating the directory if needed.
func (s *FileStore) Save(user *User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0o600); err != nil {
		return fmt.Errorf("write user record: %w", err)
	}
	return nil
}

// Clear removes the user record. Removing an absent record is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear user record: %w", err)
	}
	return nil
}
