// Package media shells out to ffmpeg and ffprobe for audio extraction
// and duration probing.
package media
