// Package datasource discovers the contacts file and watches the
// orientation file.
package datasource

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daviddao/adaptive_contacts/internal/contact"
)

const (
	envContacts     = "ACV_CONTACTS"
	defaultContacts = ".acv/contacts.yaml"
)

// ErrNotFound is returned by Discover when no contacts file exists.
var ErrNotFound = errors.New("no contacts file found")

// Discover finds the contacts file path.
// Priority: explicit path > ACV_CONTACTS env var > .acv/contacts.yaml in CWD > walk up parents.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("contacts file %q: %w", explicit, err)
		}
		return explicit, nil
	}

	if env := os.Getenv(envContacts); env != "" {
		if _, err := os.Stat(env); err == nil {
			return env, nil
		}
		return "", fmt.Errorf("%s=%q: %w", envContacts, env, os.ErrNotExist)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, defaultContacts)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("looked for %s: %w", defaultContacts, ErrNotFound)
}

// Open discovers and loads the contact store. When no file is found it
// falls back to the built-in list and returns an empty path.
func Open(explicit string) (*contact.Store, string, error) {
	path, err := Discover(explicit)
	if errors.Is(err, ErrNotFound) {
		return contact.Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	s, err := contact.LoadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return s, path, nil
}
