package skintrack

import "testing"

func TestReconcileFreshStore(t *testing.T) {
	c := Reconcile(Roster, nil)
	champs := c.Champions()
	if len(champs) != len(Roster) {
		t.Fatalf("got %d champions, want %d", len(champs), len(Roster))
	}
	for i, ch := range champs {
		if ch.Name != Roster[i] {
			t.Errorf("champion %d is %q, want %q", i, ch.Name, Roster[i])
		}
		if ch.ID != ChampionID(ch.Name) {
			t.Errorf("champion %q has id %q, want %q", ch.Name, ch.ID, ChampionID(ch.Name))
		}
		if len(ch.Skins) != 0 {
			t.Errorf("fresh champion %q has skins", ch.Name)
		}
	}
}

func TestReconcileCarriesStoredState(t *testing.T) {
	stored := []*Champion{
		{ID: "kept-id", Name: "Ahri", Skins: []Skin{{ID: "s1", Name: "Foxfire", Owned: true}}},
	}
	c := Reconcile(Roster, stored)

	ahri := c.FindChampion("Ahri")
	if ahri.ID != "kept-id" {
		t.Errorf("stored id not carried over: %q", ahri.ID)
	}
	if len(ahri.Skins) != 1 || !ahri.Skins[0].Owned || ahri.Skins[0].ID != "s1" {
		t.Errorf("stored skins not carried over: %+v", ahri.Skins)
	}
}

func TestReconcileHealsMissingIDs(t *testing.T) {
	stored := []*Champion{
		{Name: "Ahri", Skins: []Skin{{Name: "Foxfire", Owned: true}}},
	}
	c := Reconcile(Roster, stored)

	ahri := c.FindChampion("Ahri")
	if ahri.ID != ChampionID("Ahri") {
		t.Errorf("missing canonical id not re-derived: %q", ahri.ID)
	}
	if ahri.Skins[0].ID == "" {
		t.Error("missing skin id not synthesized")
	}
	if !ahri.Skins[0].Owned {
		t.Error("owned flag lost while healing")
	}
}

func TestReconcileIdentityStableAcrossWipe(t *testing.T) {
	// A wiped file rebuilt from the roster recovers the same ids.
	a := Reconcile(Roster, nil)
	b := Reconcile(Roster, nil)
	for i := range a.Champions() {
		if a.Champions()[i].ID != b.Champions()[i].ID {
			t.Fatalf("canonical ids differ across rebuilds: %q != %q",
				a.Champions()[i].ID, b.Champions()[i].ID)
		}
	}
}

func TestReconcileKeepsCustomChampionsLast(t *testing.T) {
	stored := []*Champion{
		{ID: "x1", Name: "CustomChamp", Skins: []Skin{{ID: "s1", Name: "Homemade", Owned: true}}},
		{ID: "kept", Name: "Zed"},
		{ID: "x2", Name: "AnotherCustom"},
	}
	c := Reconcile(Roster, stored)

	champs := c.Champions()
	if len(champs) != len(Roster)+2 {
		t.Fatalf("got %d champions, want %d", len(champs), len(Roster)+2)
	}
	// Custom champions trail the canonical roster, in their original order.
	if champs[len(Roster)].Name != "CustomChamp" || champs[len(Roster)+1].Name != "AnotherCustom" {
		t.Errorf("custom champions misplaced: %q, %q",
			champs[len(Roster)].Name, champs[len(Roster)+1].Name)
	}
	custom := champs[len(Roster)]
	if custom.ID != "x1" {
		t.Errorf("custom champion id not preserved verbatim: %q", custom.ID)
	}
	if len(custom.Skins) != 1 || !custom.Skins[0].Owned {
		t.Errorf("custom champion skins lost: %+v", custom.Skins)
	}
	if zed := c.FindChampion("Zed"); zed.ID != "kept" {
		t.Errorf("canonical champion lost its stored id: %q", zed.ID)
	}
}

func TestReconcileDuplicateStoredNamesLastWins(t *testing.T) {
	stored := []*Champion{
		{ID: "old", Name: "Ahri", Skins: []Skin{{ID: "s1", Name: "Old"}}},
		{ID: "new", Name: "Ahri", Skins: []Skin{{ID: "s2", Name: "New"}}},
	}
	c := Reconcile(Roster, stored)

	if len(c.Champions()) != len(Roster) {
		t.Fatalf("duplicate canonical names leaked extra champions: %d", len(c.Champions()))
	}
	ahri := c.FindChampion("Ahri")
	if ahri.ID != "new" || len(ahri.Skins) != 1 || ahri.Skins[0].Name != "New" {
		t.Errorf("last stored duplicate did not win: %+v", ahri)
	}
}
