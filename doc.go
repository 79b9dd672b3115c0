// Package skintrack provides the types and functions for tracking a personal
// League of Legends skin collection. It is designed to be local-first: the
// whole collection lives in a single JSON file the user owns, and the remote
// catalog is only ever consulted to enrich it, never to overwrite it.
//
// The core functionalities include:
//   - Collection Management: An ordered roster of champions, each holding an
//     ordered list of skins with an owned flag, mutated by small atomic
//     operations (toggle, add, remove, bulk set, bulk reset).
//   - Name Normalization: A single normal form for names (lowercase, accents
//     and punctuation stripped) used for searching, catalog matching and
//     deduplication, so "Cho'Gath" and "chogath" are the same champion.
//   - Schema Healing: Reconciling a stored collection against the built-in
//     canonical roster so the file always contains every known champion, and
//     user-added champions are never lost.
//   - Catalog Merging: Reconciling a champion's skins with names fetched from
//     the Data Dragon catalog without resetting owned flags or dropping skins
//     the user added by hand.
//   - Import/Export: Reading and writing the collection document so it can
//     be moved between machines and merged by champion name.
//
// This package serves as the foundational logic for the `skintrack`
// command-line tool.
package skintrack
