package types

// AudioToTextResponse is the reply of POST /audio-to-text.
type AudioToTextResponse struct {
	Text string `json:"text"`
}

// TextToAudioRequest is the body of POST /text-to-audio.
// Either MessageID or Text must be set; MessageID wins when both are.
type TextToAudioRequest struct {
	MessageID string `json:"message_id,omitempty"`
	Text      string `json:"text,omitempty"`
	User      string `json:"user"`
}

// Audio is synthesized speech.
type Audio struct {
	Data        []byte
	ContentType string
}
