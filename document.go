package skintrack

import (
	"encoding/json"
	"fmt"
)

// This file defines the collection document: the JSON shape shared by the
// persisted file and the import/export format, so an exported file
// round-trips through the persistence slot unchanged.

type jskin struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Checked any    `json:"checked"`
}

type jchampion struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Skins []jskin `json:"skins"`
}

// decodeDocument parses a collection document, coercing every field to its
// expected shape: owned flags become booleans whatever JSON type was stored.
// Missing skin ids are left empty here; Reconcile and Import synthesize them.
func decodeDocument(data []byte) ([]*Champion, error) {
	var doc []jchampion
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("not a collection document: %w", err)
	}
	champions := make([]*Champion, 0, len(doc))
	for _, jc := range doc {
		ch := &Champion{ID: jc.ID, Name: jc.Name}
		for _, js := range jc.Skins {
			ch.Skins = append(ch.Skins, Skin{ID: js.ID, Name: js.Name, Owned: truthy(js.Checked)})
		}
		champions = append(champions, ch)
	}
	return champions, nil
}

// truthy coerces a decoded JSON value to an owned flag.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != "" && x != "false" && x != "0"
	default:
		return false
	}
}

// encodeDocument serializes the collection in the document shape, indented
// since users carry the file between machines and diff it.
func encodeDocument(c *Collection) ([]byte, error) {
	doc := make([]jchampion, 0, len(c.champions))
	for _, ch := range c.champions {
		jc := jchampion{ID: ch.ID, Name: ch.Name, Skins: make([]jskin, 0, len(ch.Skins))}
		for _, s := range ch.Skins {
			jc.Skins = append(jc.Skins, jskin{ID: s.ID, Name: s.Name, Checked: s.Owned})
		}
		doc = append(doc, jc)
	}
	return json.MarshalIndent(doc, "", "  ")
}
