// Package mission exposes story missions.
//
// Main missions link to their successors and to a reward. Chapters do not list their
// missions on disk, so the chapter membership is derived from MainMission.ChapterID.
package mission
