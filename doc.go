// Package deckbox models a deckbox.org collection export and computes the
// difference between two snapshots of it.
//
// The core types are [Card], a single printing-variant line item, and
// [Collection], an identity-keyed aggregation of cards. A collection built
// from an earlier export can be diffed against one built from a later
// export, producing signed quantity deltas and, when price data is present,
// monetary value changes.
//
// File ingestion lives in the deckfile package, report rendering in the
// renderer package. This package is purely an in-memory model: it consumes
// [Row] values and produces cards, collections and report structs.
package deckbox
