// Package equipment exposes light cones: their superimposition skill (one row per
// rank) and ascension phases.
package equipment
