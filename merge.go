package skintrack

// MergeSkins reconciles a champion's current skins with the skin names
// fetched from the remote catalog.
//
// Fetched names come first, in fetched order: when a current skin normalizes
// to the same key as a fetched name it is reused unchanged (same id, same
// owned flag), otherwise a fresh unowned skin is created. Fetched names that
// normalize to an already-seen key are dropped, so the catalog part of the
// result never holds two skins with the same normalized name. Current skins
// matching no fetched name are appended after, in their original order: those
// are the user's hand-added skins and must survive every merge.
//
// Merging twice with the same fetched list changes nothing the second time.
func MergeSkins(existing []Skin, fetched []string) []Skin {
	byKey := make(map[string]*Skin, len(existing))
	for i := range existing {
		key := Normalize(existing[i].Name)
		if _, dup := byKey[key]; !dup {
			byKey[key] = &existing[i]
		}
	}

	seen := make(map[string]bool, len(fetched))
	merged := make([]Skin, 0, len(existing)+len(fetched))
	for _, name := range fetched {
		key := Normalize(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		if s, ok := byKey[key]; ok {
			merged = append(merged, *s)
		} else {
			merged = append(merged, Skin{ID: newSkinID(), Name: name})
		}
	}

	// Custom skins: anything whose normalized name no fetched name claimed.
	for i := range existing {
		if !seen[Normalize(existing[i].Name)] {
			merged = append(merged, existing[i])
		}
	}
	return merged
}
