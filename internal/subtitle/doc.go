// Package subtitle provides the dialogue line model, SRT reading and
// writing, and the text normalization shared by the alignment and
// transcription pipelines. The rest of the tool is agnostic to the on-disk
// subtitle format.
package subtitle
