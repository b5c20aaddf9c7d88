// Package buff exposes MazeBuff, the overworld and challenge buffs. A buff has one row
// per level, grouped under the buff id.
package buff
