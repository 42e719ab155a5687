package voice

import "context"

// VoiceParams selects the synthesis voice.
type VoiceParams struct {
	LanguageCode string
	VoiceName    string
	SpeakingRate float64
}

// DefaultParams is the concierge voice used for booking confirmations.
var DefaultParams = VoiceParams{
	LanguageCode: "fr-FR",
	VoiceName:    "fr-FR-Neural2-C",
	SpeakingRate: 1.0,
}

// Synthesizer is the external audio-synthesis collaborator. Errors are
// expected to be caught by callers and degraded to a textual fallback.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, params VoiceParams) ([]byte, error)
}
