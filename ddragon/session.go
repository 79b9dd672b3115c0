package ddragon

import (
	"errors"
	"fmt"

	"github.com/etnz/skintrack"
)

// Session is the per-run snapshot of the remote catalog: the newest version
// and the champion name to key map. It is built once at the start of a run
// and read-only afterwards; it is never persisted, so the next run picks up
// a new patch automatically.
type Session struct {
	client  *Client
	version string
	locale  string
	keys    map[string]string
}

// NewSession snapshots the catalog for one run. When the version list or the
// champion index cannot be fetched the session cannot exist, and the caller
// should treat the catalog feature as unavailable rather than fail.
func NewSession(client *Client, locale string) (*Session, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	version, ok := client.LatestVersion()
	if !ok {
		return nil, errors.New("catalog unavailable: cannot determine latest version")
	}
	entries, err := client.FetchIndex(version, locale)
	if err != nil {
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	keys := make(map[string]string, 2*len(entries))
	for _, e := range entries {
		// Index both spellings: the localized display name and the internal
		// identifier disagree for some champions (Wukong is MonkeyKing).
		keys[skintrack.Normalize(e.Name)] = e.Key
		keys[skintrack.Normalize(e.Key)] = e.Key
	}
	return &Session{client: client, version: version, locale: locale, keys: keys}, nil
}

// Version returns the catalog version this session is pinned to.
func (s *Session) Version() string { return s.version }

// Key returns the remote key for a champion name, matched on the
// normalized form.
func (s *Session) Key(name string) (string, bool) {
	key, ok := s.keys[skintrack.Normalize(name)]
	return key, ok
}

// SkinNames returns the catalog skin names for a champion name. It
// implements the skin source the collection prefill consumes. A champion
// unknown to the catalog reports false; a failed fetch reports an empty
// list, which the prefill skips.
func (s *Session) SkinNames(name string) ([]string, bool) {
	key, ok := s.Key(name)
	if !ok {
		return nil, false
	}
	return s.client.FetchSkinNames(s.version, s.locale, key), true
}
