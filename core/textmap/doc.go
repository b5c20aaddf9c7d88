// Package textmap implements the localization resolver.
//
// A TextMap is a flat {"<hash>": "<text>"} document under TextMap/. Rows reference text
// through a Hash; Get returns "" for unknown hashes because translations routinely lag
// behind table content.
//
// The language is selected with a BCP 47 tag and matched against the shipped files:
// zh-Hans reads TextMapCHS.json and falls back to TextMapCN.json, en reads TextMapEN.json,
// and so on.
package textmap
