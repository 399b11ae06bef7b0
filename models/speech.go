package models

// SpeechAudio is a synthesized audio clip returned to the caller for playback.
type SpeechAudio struct {
	Data     []byte
	MimeType string
}

// SpeakTextMaxChars is the server-side ceiling on synthesized text length.
const SpeakTextMaxChars = 500
