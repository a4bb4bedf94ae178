package speech

import (
	"context"
	"strings"
	"testing"
)

func TestTranscribeRequiresAPIKey(t *testing.T) {
	transcriber := &DeepgramTranscriber{baseURL: "https://api.deepgram.com/v1", model: "nova-2"}

	if transcriber.Available() {
		t.Fatal("expected transcriber without a key to be unavailable")
	}

	_, err := transcriber.Transcribe(context.Background(), strings.NewReader(""), AudioConfig{})
	if err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestBuildListenURLDefaults(t *testing.T) {
	transcriber := &DeepgramTranscriber{
		apiKey:  "key",
		baseURL: "https://api.deepgram.com/v1",
		model:   "nova-2",
	}

	url, err := transcriber.buildListenURL(AudioConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"wss://api.deepgram.com/v1/listen",
		"encoding=linear16",
		"sample_rate=16000",
		"channels=1",
		"interim_results=false",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("url missing %q: %s", want, url)
		}
	}
}

func TestBuildListenURLWithLanguage(t *testing.T) {
	transcriber := &DeepgramTranscriber{
		apiKey:   "key",
		baseURL:  "http://localhost:8080/v1",
		model:    "m",
		language: "en-US",
	}

	url, err := transcriber.buildListenURL(AudioConfig{SampleRate: 8000, Channels: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(url, "ws://localhost:8080/v1/listen") {
		t.Fatalf("unexpected ws url: %s", url)
	}
	if !strings.Contains(url, "language=en-US") {
		t.Fatalf("expected language in url: %s", url)
	}
	if !strings.Contains(url, "sample_rate=8000") {
		t.Fatalf("expected sample rate in url: %s", url)
	}
}

func TestExtractTranscript(t *testing.T) {
	var response deepgramResponse
	response.Channel.Alternatives = []struct {
		Transcript string `json:"transcript"`
	}{
		{Transcript: "  grilled salmon  "},
	}

	if got := extractTranscript(response); got != "grilled salmon" {
		t.Fatalf("expected trimmed transcript, got %q", got)
	}

	if got := extractTranscript(deepgramResponse{}); got != "" {
		t.Fatalf("expected empty transcript, got %q", got)
	}
}
