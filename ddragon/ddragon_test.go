package ddragon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServer fakes the three Data Dragon endpoints used by the client.
func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["15.4.1", "15.3.1", "15.2.1"]`))
	})
	mux.HandleFunc("/cdn/15.4.1/data/en_US/champion.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {
			"Ahri":       {"id": "Ahri", "key": "103", "name": "Ahri"},
			"MonkeyKing": {"id": "MonkeyKing", "key": "62", "name": "Wukong"},
			"Chogath":    {"id": "Chogath", "key": "31", "name": "Cho'Gath"}
		}}`))
	})
	mux.HandleFunc("/cdn/15.4.1/data/en_US/champion/Ahri.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"Ahri": {"skins": [
			{"id": "103000", "num": 0, "name": "default"},
			{"id": "103001", "num": 1, "name": "Dynasty Ahri"},
			{"id": "103002", "num": 2, "name": "Midnight Ahri"}
		]}}}`))
	})
	mux.HandleFunc("/cdn/15.4.1/data/en_US/champion/Broken.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": garbage`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) *Client {
	return &Client{base: srv.URL, http: srv.Client()}
}

func TestLatestVersion(t *testing.T) {
	c := testClient(catalogServer(t))
	version, ok := c.LatestVersion()
	require.True(t, ok)
	assert.Equal(t, "15.4.1", version)
}

func TestLatestVersionUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv)
	_, ok := c.LatestVersion()
	assert.False(t, ok, "a failing service must read as absence, not panic")
}

func TestFetchIndex(t *testing.T) {
	c := testClient(catalogServer(t))
	entries, err := c.FetchIndex("15.4.1", "en_US")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Sorted by key, with display name and internal identifier split out.
	assert.Equal(t, IndexEntry{Name: "Ahri", Key: "Ahri"}, entries[0])
	assert.Equal(t, IndexEntry{Name: "Cho'Gath", Key: "Chogath"}, entries[1])
	assert.Equal(t, IndexEntry{Name: "Wukong", Key: "MonkeyKing"}, entries[2])
}

func TestFetchSkinNames(t *testing.T) {
	c := testClient(catalogServer(t))
	names := c.FetchSkinNames("15.4.1", "en_US", "Ahri")
	// The base skin (num 0) is not a collectible variant.
	assert.Equal(t, []string{"Dynasty Ahri", "Midnight Ahri"}, names)
}

func TestFetchSkinNamesDegradesToEmpty(t *testing.T) {
	c := testClient(catalogServer(t))
	assert.Empty(t, c.FetchSkinNames("15.4.1", "en_US", "Unknown"), "missing champion")
	assert.Empty(t, c.FetchSkinNames("15.4.1", "en_US", "Broken"), "malformed body")
}

func TestNewSession(t *testing.T) {
	c := testClient(catalogServer(t))
	s, err := NewSession(c, "")
	require.NoError(t, err)
	assert.Equal(t, "15.4.1", s.Version())

	// Both the display name and the internal identifier resolve.
	for _, name := range []string{"Wukong", "MonkeyKing", "wukong", "Cho'Gath", "chogath"} {
		_, ok := s.Key(name)
		assert.True(t, ok, "Key(%q)", name)
	}
	key, _ := s.Key("Wukong")
	assert.Equal(t, "MonkeyKing", key)

	_, ok := s.Key("NotAChampion")
	assert.False(t, ok)
}

func TestSessionSkinNames(t *testing.T) {
	c := testClient(catalogServer(t))
	s, err := NewSession(c, "en_US")
	require.NoError(t, err)

	names, ok := s.SkinNames("Ahri")
	require.True(t, ok)
	assert.Equal(t, []string{"Dynasty Ahri", "Midnight Ahri"}, names)

	_, ok = s.SkinNames("NotAChampion")
	assert.False(t, ok)
}

func TestNewSessionUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewSession(testClient(srv), "en_US")
	assert.Error(t, err)
}
