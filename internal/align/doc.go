// Package align implements the timeline alignment engine: it maps dialogue
// lines to reference word timings and rebuilds the subtitle timeline.
//
// The pipeline runs in fixed order: tokenize both streams, find common
// token runs, reject drift outliers with a rolling median filter, smooth
// accepted anchors per scene, interpolate new start times for every line,
// then enforce minimum gaps and durations. Text content and per-line
// durations are preserved throughout; only timing changes.
package align
