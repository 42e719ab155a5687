// File: services/voice/googleTTS.go
package voice

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// GoogleSynthesizer implements Synthesizer on Google Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	client *texttospeech.Client
}

func NewGoogleSynthesizer(ctx context.Context, credentialsFile string) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize text-to-speech client: %w", err)
	}
	return &GoogleSynthesizer{client: client}, nil
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text string, params VoiceParams) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: params.LanguageCode,
			Name:         params.VoiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  params.SpeakingRate,
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	return resp.AudioContent, nil
}

func (g *GoogleSynthesizer) Close() error {
	return g.client.Close()
}
