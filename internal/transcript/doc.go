// Package transcript models recognized speech segments and repairs the
// weak spots in a raw transcription before it is used for timing.
//
// Raw recognizer output passes through cleaning, suspicious-segment
// detection, zone merging, re-recognition under escalating decode
// configurations, candidate scoring, and boundary stitching. A repair is
// only accepted when it scores strictly better than the original content
// by a margin; otherwise the cleaned original survives.
package transcript
