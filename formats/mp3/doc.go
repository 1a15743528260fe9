// Package mp3 decodes MP3 streams using github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always produces stereo 16-bit PCM at the stream's
// native sample rate; mono MP3s come out as identical left/right channels.
// Decoded samples are normalized float32 in [-1, 1].
package mp3
