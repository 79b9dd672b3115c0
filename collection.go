package skintrack

import (
	"strings"

	"github.com/google/uuid"
)

// Skin is one trackable variant of a champion, with an owned flag.
type Skin struct {
	ID    string
	Name  string
	Owned bool
}

// Champion is a roster member owning an ordered list of skins.
type Champion struct {
	ID    string
	Name  string
	Skins []Skin
}

// OwnedCount returns the number of owned skins of this champion.
func (ch *Champion) OwnedCount() int {
	n := 0
	for _, s := range ch.Skins {
		if s.Owned {
			n++
		}
	}
	return n
}

// HasOwned reports whether the champion has at least one owned skin.
func (ch *Champion) HasOwned() bool { return ch.OwnedCount() > 0 }

// Skin returns the skin with this id, or nil if unknown.
func (ch *Champion) Skin(id string) *Skin {
	for i := range ch.Skins {
		if ch.Skins[i].ID == id {
			return &ch.Skins[i]
		}
	}
	return nil
}

// FindSkin returns the first skin whose name normalizes like name, or nil.
func (ch *Champion) FindSkin(name string) *Skin {
	key := Normalize(name)
	for i := range ch.Skins {
		if Normalize(ch.Skins[i].Name) == key {
			return &ch.Skins[i]
		}
	}
	return nil
}

// Collection is the ordered roster: canonical champions first, in Roster
// order, user-added champions after, in the order they were first seen.
//
// Every mutating method is synchronous; the caller saves the collection
// after each one.
type Collection struct {
	champions []*Champion
	index     map[string]*Champion // by champion id
}

// NewCollection returns a collection built purely from the canonical roster,
// every champion with zero skins.
func NewCollection() *Collection { return Reconcile(Roster, nil) }

func newCollection(champions []*Champion) *Collection {
	c := &Collection{
		champions: champions,
		index:     make(map[string]*Champion, len(champions)),
	}
	for _, ch := range champions {
		c.index[ch.ID] = ch
	}
	return c
}

// Champions returns the champions in roster order.
func (c *Collection) Champions() []*Champion { return c.champions }

// Champion returns the champion with this id, or nil if unknown.
func (c *Collection) Champion(id string) *Champion { return c.index[id] }

// FindChampion returns the champion whose name normalizes like name, or nil.
func (c *Collection) FindChampion(name string) *Champion {
	key := Normalize(name)
	for _, ch := range c.champions {
		if Normalize(ch.Name) == key {
			return ch
		}
	}
	return nil
}

// ChampionID derives the stable identity of a canonical champion from its
// normalized name, so a wiped file rebuilt from the roster recovers the same
// ids across reloads.
func ChampionID(name string) string { return "champ-" + Normalize(name) }

func newSkinID() string { return uuid.NewString() }

// ToggleSkin sets the owned flag of one skin. Unknown ids are a no-op.
func (c *Collection) ToggleSkin(championID, skinID string, owned bool) {
	ch := c.Champion(championID)
	if ch == nil {
		return
	}
	if s := ch.Skin(skinID); s != nil {
		s.Owned = owned
	}
}

// SetAllSkins sets every skin of one champion to the same owned flag,
// leaving skin order and identities untouched.
func (c *Collection) SetAllSkins(championID string, owned bool) {
	ch := c.Champion(championID)
	if ch == nil {
		return
	}
	for i := range ch.Skins {
		ch.Skins[i].Owned = owned
	}
}

// AddSkin appends a new unowned skin with a fresh id and returns it.
// An empty trimmed name is a deliberate no-op and returns nil.
func (c *Collection) AddSkin(championID, name string) *Skin {
	ch := c.Champion(championID)
	if ch == nil {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	ch.Skins = append(ch.Skins, Skin{ID: newSkinID(), Name: name})
	return &ch.Skins[len(ch.Skins)-1]
}

// RemoveSkin deletes one skin. Unknown ids are a no-op.
func (c *Collection) RemoveSkin(championID, skinID string) {
	ch := c.Champion(championID)
	if ch == nil {
		return
	}
	for i := range ch.Skins {
		if ch.Skins[i].ID == skinID {
			ch.Skins = append(ch.Skins[:i], ch.Skins[i+1:]...)
			return
		}
	}
}

// ClearOwned resets every owned flag in the whole collection, leaving
// champions and skins otherwise intact.
func (c *Collection) ClearOwned() {
	for _, ch := range c.champions {
		for i := range ch.Skins {
			ch.Skins[i].Owned = false
		}
	}
}

// Filter returns the ordered subsequence of champions whose normalized name
// contains the normalized query (an empty query matches all) and whose
// ownership status matches mode.
func (c *Collection) Filter(query string, mode FilterMode) []*Champion {
	key := Normalize(query)
	matches := make([]*Champion, 0, len(c.champions))
	for _, ch := range c.champions {
		if key != "" && !strings.Contains(Normalize(ch.Name), key) {
			continue
		}
		switch mode {
		case MustHaveOwned:
			if !ch.HasOwned() {
				continue
			}
		case MustHaveNone:
			if ch.HasOwned() {
				continue
			}
		}
		matches = append(matches, ch)
	}
	return matches
}

// Counts aggregates ownership over a whole collection.
type Counts struct {
	OwnedChampions int // champions with at least one owned skin
	Champions      int
	OwnedSkins     int
	Skins          int
}

// Counts recomputes the aggregate ownership counts. The roster is small
// (hundreds of champions, thousands of skins) so a full scan on demand is
// cheaper than keeping an incremental cache correct.
func (c *Collection) Counts() Counts {
	var n Counts
	n.Champions = len(c.champions)
	for _, ch := range c.champions {
		owned := ch.OwnedCount()
		if owned > 0 {
			n.OwnedChampions++
		}
		n.OwnedSkins += owned
		n.Skins += len(ch.Skins)
	}
	return n
}

// ChampionCompletion returns the share of champions with at least one owned skin.
func (n Counts) ChampionCompletion() Percent {
	if n.Champions == 0 {
		return 0
	}
	return Percent(100 * float64(n.OwnedChampions) / float64(n.Champions))
}

// SkinCompletion returns the share of owned skins.
func (n Counts) SkinCompletion() Percent {
	if n.Skins == 0 {
		return 0
	}
	return Percent(100 * float64(n.OwnedSkins) / float64(n.Skins))
}
