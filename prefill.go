package skintrack

// SkinSource provides the authoritative skin names for a champion, usually
// backed by the Data Dragon catalog. The boolean reports whether the source
// knows the champion at all.
type SkinSource interface {
	SkinNames(name string) (names []string, ok bool)
}

// Prefill merges the source's skin list into each listed champion, strictly
// one champion at a time: a champion's fetch and merge complete fully before
// the next one starts, so the remote service never sees concurrent requests
// from a single run. That sequencing is a politeness policy, keep it.
//
// Champions unknown to c or to the source are skipped, as are champions
// whose fetch came back empty (a degraded fetch must not erase anything).
// Returns the number of champions whose skin list was merged.
func (c *Collection) Prefill(src SkinSource, championIDs []string) int {
	updated := 0
	for _, id := range championIDs {
		ch := c.Champion(id)
		if ch == nil {
			continue
		}
		names, ok := src.SkinNames(ch.Name)
		if !ok || len(names) == 0 {
			continue
		}
		ch.Skins = MergeSkins(ch.Skins, names)
		updated++
	}
	return updated
}
