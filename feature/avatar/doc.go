// Package avatar exposes playable characters: their paths, skills with per-level rows,
// eidolons (ranks) and ascension phases (promotions).
package avatar
