package skintrack

import "testing"

// fakeSource records lookup order, so tests can assert the one-at-a-time
// sequencing and simulate partial catalog coverage.
type fakeSource struct {
	skins map[string][]string
	calls []string
}

func (f *fakeSource) SkinNames(name string) ([]string, bool) {
	f.calls = append(f.calls, name)
	names, ok := f.skins[Normalize(name)]
	return names, ok
}

func TestPrefillMergesSequentially(t *testing.T) {
	c := NewCollection()
	ahri := c.FindChampion("Ahri")
	jinx := c.FindChampion("Jinx")
	s := c.AddSkin(ahri.ID, "Foxfire")
	c.ToggleSkin(ahri.ID, s.ID, true)

	src := &fakeSource{skins: map[string][]string{
		"ahri": {"Foxfire", "Midnight"},
		"jinx": {"Mafia"},
	}}

	updated := c.Prefill(src, []string{ahri.ID, jinx.ID})
	if updated != 2 {
		t.Errorf("Prefill updated %d champions, want 2", updated)
	}
	if len(src.calls) != 2 || src.calls[0] != "Ahri" || src.calls[1] != "Jinx" {
		t.Errorf("fetch order = %v, want [Ahri Jinx]", src.calls)
	}

	if len(ahri.Skins) != 2 || !ahri.Skins[0].Owned || ahri.Skins[0].ID != s.ID {
		t.Errorf("Ahri merge lost state: %+v", ahri.Skins)
	}
	if len(jinx.Skins) != 1 || jinx.Skins[0].Name != "Mafia" {
		t.Errorf("Jinx merge wrong: %+v", jinx.Skins)
	}
}

func TestPrefillSkipsUnknownAndEmpty(t *testing.T) {
	c := NewCollection()
	ahri := c.FindChampion("Ahri")
	zed := c.FindChampion("Zed")
	c.AddSkin(zed.ID, "Shockblade")

	src := &fakeSource{skins: map[string][]string{
		// Ahri unknown to the catalog; Zed's fetch degraded to empty.
		"zed": {},
	}}

	updated := c.Prefill(src, []string{ahri.ID, zed.ID, "bogus-id"})
	if updated != 0 {
		t.Errorf("Prefill updated %d champions, want 0", updated)
	}
	// A degraded fetch must not erase the existing skins.
	if len(zed.Skins) != 1 {
		t.Errorf("empty fetch erased skins: %+v", zed.Skins)
	}
	// Unknown collection ids are skipped without a fetch.
	if len(src.calls) != 2 {
		t.Errorf("fetches = %v, want exactly [Ahri Zed]", src.calls)
	}
}
