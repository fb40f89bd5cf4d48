// Package profile manages the persisted profile store: named credential
// bundles (API key, organization ID, API URL) plus the pointer that marks
// which one is active.
package profile

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrNotFound reports a reference to a profile name that is not in the
// store. Callers wrap it with the offending name.
var ErrNotFound = errors.New("profile not found")

// Profile is one named credential bundle.
type Profile struct {
	Name   string `json:"name"`
	APIKey string `json:"apiKey"`
	OrgID  string `json:"orgId"`
	APIURL string `json:"apiUrl,omitempty"`
}

// Store is the persisted document: all profiles plus the active pointer.
// The pointer is an explicit field so that every mutation of "which
// profile is active" goes through store operations rather than ambient
// state.
type Store struct {
	ActiveProfile string    `json:"activeProfile,omitempty"`
	Profiles      []Profile `json:"profiles,omitempty"`
}

// Lookup returns the profile with the given name.
func (s *Store) Lookup(name string) (*Profile, bool) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], true
		}
	}
	return nil, false
}

// Active resolves the active pointer. Returns false when no profile is
// active. A dangling pointer is caught by Validate on load, so Active
// does not report it.
func (s *Store) Active() (*Profile, bool) {
	if s.ActiveProfile == "" {
		return nil, false
	}
	return s.Lookup(s.ActiveProfile)
}

// Upsert inserts the profile, or overwrites the entry with the same
// name. With makeActive, the pointer moves to it.
func (s *Store) Upsert(p Profile, makeActive bool) {
	if existing, ok := s.Lookup(p.Name); ok {
		*existing = p
	} else {
		s.Profiles = append(s.Profiles, p)
	}
	if makeActive {
		s.ActiveProfile = p.Name
	}
}

// SetActive moves the active pointer to the named profile.
func (s *Store) SetActive(name string) error {
	if _, ok := s.Lookup(name); !ok {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	s.ActiveProfile = name
	return nil
}

// Delete removes the named profile. Deleting the active profile clears
// the pointer; the next resolution must then come from flags, env vars,
// or a new login.
func (s *Store) Delete(name string) error {
	for i := range s.Profiles {
		if s.Profiles[i].Name != name {
			continue
		}
		s.Profiles = append(s.Profiles[:i], s.Profiles[i+1:]...)
		if s.ActiveProfile == name {
			s.ActiveProfile = ""
		}
		return nil
	}
	return fmt.Errorf("profile %q: %w", name, ErrNotFound)
}

// Validate checks store integrity: profile names must be non-empty and
// unique, and the active pointer, if set, must reference an existing
// profile. All violations are reported, not just the first.
func (s *Store) Validate() error {
	var result *multierror.Error

	seen := make(map[string]bool, len(s.Profiles))
	for _, p := range s.Profiles {
		if p.Name == "" {
			result = multierror.Append(result, errors.New("profile with empty name"))
			continue
		}
		if seen[p.Name] {
			result = multierror.Append(result, fmt.Errorf("duplicate profile name %q", p.Name))
		}
		seen[p.Name] = true
	}

	if s.ActiveProfile != "" && !seen[s.ActiveProfile] {
		result = multierror.Append(result,
			fmt.Errorf("active profile %q: %w", s.ActiveProfile, ErrNotFound))
	}

	return result.ErrorOrNil()
}
