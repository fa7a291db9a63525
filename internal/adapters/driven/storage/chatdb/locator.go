package chatdb

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Locator implements the interface.
var _ driven.StoreLocator = (*Locator)(nil)

// storeRelPath is the store location below a user's home directory.
var storeRelPath = filepath.Join("Library", "Messages", "chat.db")

// Locator finds the message store among an ordered list of candidates.
type Locator struct {
	candidates []string
}

// NewLocator creates a locator for the current user. A non-empty
// override is the only candidate checked.
func NewLocator(override string) *Locator {
	if override != "" {
		return NewLocatorWithCandidates(override)
	}
	home, _ := os.UserHomeDir()
	return NewLocatorWithCandidates(CandidatePaths(home, currentUsername())...)
}

// NewLocatorWithCandidates creates a locator over explicit paths.
func NewLocatorWithCandidates(paths ...string) *Locator {
	return &Locator{candidates: paths}
}

// CandidatePaths returns the default store paths for home and username.
// Empty inputs and duplicates are skipped.
func CandidatePaths(home, username string) []string {
	var paths []string
	add := func(p string) {
		for _, existing := range paths {
			if existing == p {
				return
			}
		}
		paths = append(paths, p)
	}

	if home != "" {
		add(filepath.Join(home, storeRelPath))
	}
	if username != "" {
		add(filepath.Join("/Users", username, storeRelPath))
	}
	return paths
}

// Locate returns the first candidate that exists and can be opened for reading.
func (l *Locator) Locate() (string, error) {
	for _, p := range l.candidates {
		if isReadableFile(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: checked %s", domain.ErrStoreNotFound, strings.Join(l.candidates, ", "))
}

// Candidates returns the ordered paths Locate checks.
func (l *Locator) Candidates() []string {
	out := make([]string, len(l.candidates))
	copy(out, l.candidates)
	return out
}

func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
