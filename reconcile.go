package skintrack

// Reconcile heals a stored roster against a canonical name list, producing a
// collection that holds exactly one champion per canonical name, in canonical
// order, followed by every stored champion whose name is not canonical, in
// their original relative order.
//
// Canonical champions found in the store (matched by exact name) keep their
// stored id and skins; a missing or empty id is re-derived from the name so
// older files converge to the stable identity. Canonical champions absent
// from the store are created with zero skins. Non-canonical champions are
// the user's own additions and are carried over verbatim, only synthesizing
// ids that are missing.
//
// Reconcile is pure: it never touches storage, so it can be tested directly.
func Reconcile(canonical []string, stored []*Champion) *Collection {
	byName := make(map[string]*Champion, len(stored))
	for _, ch := range stored {
		// Two stored champions with the same name: the later one wins.
		byName[ch.Name] = ch
	}

	canonicalNames := make(map[string]bool, len(canonical))
	champions := make([]*Champion, 0, len(canonical)+len(stored))
	for _, name := range canonical {
		canonicalNames[name] = true
		healed := &Champion{ID: ChampionID(name), Name: name}
		if ch, ok := byName[name]; ok {
			if ch.ID != "" {
				healed.ID = ch.ID
			}
			healed.Skins = healSkins(ch.Skins)
		}
		champions = append(champions, healed)
	}

	for _, ch := range stored {
		if canonicalNames[ch.Name] {
			continue
		}
		id := ch.ID
		if id == "" {
			id = newSkinID()
		}
		champions = append(champions, &Champion{ID: id, Name: ch.Name, Skins: healSkins(ch.Skins)})
	}
	return newCollection(champions)
}

// healSkins copies a stored skin list, synthesizing any missing ids.
func healSkins(skins []Skin) []Skin {
	if len(skins) == 0 {
		return nil
	}
	healed := make([]Skin, len(skins))
	copy(healed, skins)
	for i := range healed {
		if healed[i].ID == "" {
			healed[i].ID = newSkinID()
		}
	}
	return healed
}
