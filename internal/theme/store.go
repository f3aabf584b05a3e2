// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// PREFERENCE STORE
// =============================================================================

// PreferenceStore persists the user's explicit theme choice. It holds a
// single key whose value is constrained to the two theme names; any other
// stored value is reported as absent.
//
// Access is synchronous and best-effort. Implementations must never block on
// retries; a failed read degrades to system scheme detection and a failed
// write is dropped by the caller.
type PreferenceStore interface {
	// Load returns the stored preference. ok is false when no preference
	// exists, the store is unavailable, or the stored value is not a
	// recognized theme.
	Load() (t Theme, ok bool)

	// Save overwrites the stored preference. Only Controller.Toggle calls
	// this; the preference is never cleared automatically.
	Save(t Theme) error
}

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore keeps the preference in a single small file, one theme name per
// file. The file lives next to the config so it survives across runs of the
// same user profile.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed preference store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath returns the standard preference file location,
// ~/.folio/theme.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio", "theme"), nil
}

// Load reads and validates the stored preference. Read errors and
// unrecognized contents both report absent; corruption is never an error
// here, just a fallthrough to the system scheme.
func (s *FileStore) Load() (Theme, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	return Parse(strings.TrimSpace(string(data)))
}

// Save writes the preference atomically with owner-only permissions, the
// same treatment config files get.
func (s *FileStore) Save(t Theme) error {
	return util.AtomicWriteFile(s.path, []byte(t.String()+"\n"), 0600)
}
