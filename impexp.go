package skintrack

import (
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format.
// It is exactly the persisted document shape, so exported files round-trip
// through the persistence slot and vice versa.

// Export writes the collection to 'w' in the import/export format.
func Export(w io.Writer, c *Collection) error {
	data, err := encodeDocument(c)
	if err != nil {
		return fmt.Errorf("cannot export collection: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write collection document: %w", err)
	}
	return nil
}

// Import reads a collection document from 'r' and merges it into c by exact
// champion name: a matched champion adopts the incoming skin list wholesale
// (incoming ids kept, missing ones synthesized); champions of c absent from
// the document are untouched. Incoming champions unknown to c are dropped:
// import updates the roster, it does not grow it.
//
// An unreadable document is reported as an error and leaves c unchanged.
func Import(r io.Reader, c *Collection) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read import document: %w", err)
	}
	incoming, err := decodeDocument(data)
	if err != nil {
		return fmt.Errorf("cannot import: %w", err)
	}
	for _, in := range incoming {
		ch := c.championByName(in.Name)
		if ch == nil {
			continue
		}
		ch.Skins = healSkins(in.Skins)
	}
	return nil
}

// championByName matches by exact name string, the identity used by the
// import format.
func (c *Collection) championByName(name string) *Champion {
	for _, ch := range c.champions {
		if ch.Name == name {
			return ch
		}
	}
	return nil
}
