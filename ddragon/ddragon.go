// Package ddragon fetches champion and skin reference data from the Riot
// Data Dragon static-data service.
//
// The service is read-only and unauthenticated, versioned per game patch.
// Every fetch is failure tolerant: network errors, bad statuses and
// malformed bodies degrade to absence values so the caller can disable the
// catalog feature instead of crashing the run.
package ddragon

import (
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

const baseURL = "https://ddragon.leagueoflegends.com"

// DefaultLocale is used when the caller does not specify one.
const DefaultLocale = "en_US"

// Client fetches catalog data from the Data Dragon endpoints.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for the public Data Dragon service, caching
// responses on disk for a day (catalog data moves at patch cadence).
func NewClient() *Client {
	return &Client{base: baseURL, http: cachingClient()}
}

// FetchVersions returns every known catalog version, newest first.
func (c *Client) FetchVersions() ([]string, error) {
	var versions []string
	if err := c.getJSON(c.base+"/api/versions.json", &versions); err != nil {
		return nil, fmt.Errorf("cannot list catalog versions: %w", err)
	}
	return versions, nil
}

// LatestVersion returns the newest catalog version, or false when the
// service is unavailable.
func (c *Client) LatestVersion() (string, bool) {
	versions, err := c.FetchVersions()
	if err != nil || len(versions) == 0 {
		log.Printf("catalog versions unavailable: %v", err)
		return "", false
	}
	return versions[0], true
}

// IndexEntry is one champion in the per-version catalog index.
type IndexEntry struct {
	Name string // localized display name, e.g. "Wukong"
	Key  string // internal identifier naming the data file, e.g. "MonkeyKing"
}

// FetchIndex returns the champion index for a version and locale, sorted by
// key for deterministic processing.
func (c *Client) FetchIndex(version, locale string) ([]IndexEntry, error) {
	addr := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.base, version, locale)
	var payload struct {
		Data map[string]struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := c.getJSON(addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch champion index: %w", err)
	}
	entries := make([]IndexEntry, 0, len(payload.Data))
	for key, ch := range payload.Data {
		id := ch.ID
		if id == "" {
			id = key
		}
		entries = append(entries, IndexEntry{Name: ch.Name, Key: id})
	}
	slices.SortFunc(entries, func(a, b IndexEntry) int { return strings.Compare(a.Key, b.Key) })
	return entries, nil
}

// FetchSkinNames returns the skin names for one champion key, excluding the
// base skin (num 0) since that is not a collectible variant. Any failure
// yields an empty list: one missing skin list must never fail a whole
// prefill run.
func (c *Client) FetchSkinNames(version, locale, key string) []string {
	addr := fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", c.base, version, locale, key)
	var payload any
	if err := c.getJSON(addr, &payload); err != nil {
		log.Printf("skin list for %q unavailable: %v", key, err)
		return nil
	}

	// The payload nests the skin array under the champion key:
	// {"data": {"Aatrox": {"skins": [{"id": ..., "num": 0, "name": ...}]}}}
	jskins, err := jsonpath.Get(fmt.Sprintf("$.data.%s.skins", key), payload)
	if err != nil {
		log.Printf("no skins found for %q: %v", key, err)
		return nil
	}
	items, ok := jskins.([]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		skin, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if num, ok := skin["num"].(float64); ok && num == 0 {
			continue
		}
		if name, _ := skin["name"].(string); name != "" {
			names = append(names, name)
		}
	}
	return names
}
