// Package debug is a file logger for tracing captures, ticks and animations
// while a terminal owns stdout. Set FLIP_DEBUG to a file path to enable it.
package debug
