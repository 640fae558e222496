// Package flip animates layout changes in a reactive terminal element tree
// using the FLIP technique (First, Last, Invert, Play).
//
// A [Scope] owns a geometry [Store]. Each tracked region created with
// [Scope.Flip] records its element's geometry under a stable id; when the
// element shows up somewhere else (after a remount, or after a [For] or
// [Index] list reorders), the region computes the transform that puts the
// element back where it was and plays it toward identity.
//
// Nested regions compose through coordinate [Frame]s so a child only
// animates its own motion, not the motion its parent already animates.
package flip
