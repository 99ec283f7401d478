// Package textcase provides locale-aware casing helpers for report labels.
//
// Identifiers coming from catalog providers are stored lowercase
// ("la lune"); reports display them title-cased ("La Lune"). Casing rules
// depend on the language: Turkish maps "i" to "İ", Dutch capitalizes the
// "ij" digraph as a unit. The helpers here are pure functions built on
// golang.org/x/text/cases and hold no shared state.
package textcase
