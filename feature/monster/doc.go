// Package monster exposes enemy configuration.
//
// A MonsterConfig row is one concrete enemy: a template (base stats, rank) scaled by
// per-monster ratios, plus a skill list. Templates sharing a TemplateGroupID form a
// family (elite and boss variants of the same creature); the family index is derived
// since no table on disk lists it.
package monster
