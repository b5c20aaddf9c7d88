// Package challenge exposes the endgame challenge modes.
//
// The three modes (Memory of Chaos, Pure Fiction, Apocalyptic Shadow) ship as three
// near-identical pairs of group and floor tables. They are unioned into Groups and
// Floors; a row keeps the name of the table it came from so references can be reported
// against the right field. Floors are partitioned by their GroupID, since groups do not
// list their floors on disk.
package challenge
