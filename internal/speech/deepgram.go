package speech

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
)

const chunkSize = 4096

// Transcriber converts one spoken utterance into text.
type Transcriber interface {
	Available() bool
	Transcribe(ctx context.Context, audio io.Reader, cfg AudioConfig) (string, error)
}

// AudioConfig describes the uploaded audio stream.
type AudioConfig struct {
	SampleRate int
	Channels   int
	Encoding   string
}

// DeepgramTranscriber streams audio to the Deepgram listen websocket and
// collects the final transcript. Single utterance, no interim results.
type DeepgramTranscriber struct {
	apiKey      string
	baseURL     string
	model       string
	language    string
	smartFormat bool
}

func NewDeepgramTranscriber() *DeepgramTranscriber {
	model := os.Getenv("DEEPGRAM_MODEL")
	if model == "" {
		model = "nova-2"
	}
	baseURL := os.Getenv("DEEPGRAM_API_BASE")
	if baseURL == "" {
		baseURL = "https://api.deepgram.com/v1"
	}

	return &DeepgramTranscriber{
		apiKey:      strings.TrimSpace(os.Getenv("DEEPGRAM_API_KEY")),
		baseURL:     baseURL,
		model:       model,
		language:    strings.TrimSpace(os.Getenv("DEEPGRAM_LANGUAGE")),
		smartFormat: true,
	}
}

// Available reports whether the capability is configured. When false the
// voice feature is disabled, not erroring.
func (t *DeepgramTranscriber) Available() bool {
	return t.apiKey != ""
}

func (t *DeepgramTranscriber) Transcribe(
	ctx context.Context,
	audio io.Reader,
	cfg AudioConfig,
) (string, error) {

	if !t.Available() {
		return "", errors.New("DEEPGRAM_API_KEY is not configured")
	}

	wsURL, err := t.buildListenURL(cfg)
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Token "+t.apiKey)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		return "", fmt.Errorf("failed to connect to Deepgram websocket: %w", err)
	}
	defer conn.Close()

	writeErr := make(chan error, 1)
	go func() {
		writeErr <- pumpAudio(conn, audio)
	}()

	fragments, err := collectTranscript(conn)
	if err != nil {
		return "", err
	}
	if err := <-writeErr; err != nil {
		return "", err
	}

	return strings.Join(fragments, " "), nil
}

// pumpAudio streams the audio body in chunks, then signals end of stream.
func pumpAudio(conn *websocket.Conn, audio io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := audio.Read(buf)
		if n > 0 {
			if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				return fmt.Errorf("failed to send audio: %w", werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"CloseStream"}`)); err != nil {
		return fmt.Errorf("failed to close stream: %w", err)
	}
	return nil
}

// collectTranscript reads provider events until the socket closes, keeping
// only final transcript fragments.
func collectTranscript(conn *websocket.Conn) ([]string, error) {
	var fragments []string

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				return fragments, nil
			}
			return nil, fmt.Errorf("failed to read provider event: %w", err)
		}

		var response deepgramResponse
		if err := json.Unmarshal(payload, &response); err != nil {
			continue
		}

		if strings.EqualFold(response.Type, "Error") {
			message := strings.TrimSpace(response.Message)
			if message == "" {
				message = "deepgram returned an unknown error"
			}
			return nil, errors.New(message)
		}

		if !response.IsFinal && !response.SpeechFinal {
			continue
		}

		if transcript := extractTranscript(response); transcript != "" {
			fragments = append(fragments, transcript)
		}
	}
}

type deepgramResponse struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	IsFinal     bool   `json:"is_final"`
	SpeechFinal bool   `json:"speech_final"`

	Channel struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"channel"`
}

func extractTranscript(response deepgramResponse) string {
	if len(response.Channel.Alternatives) == 0 {
		return ""
	}
	return strings.TrimSpace(response.Channel.Alternatives[0].Transcript)
}

func (t *DeepgramTranscriber) buildListenURL(cfg AudioConfig) (string, error) {
	base := strings.TrimSpace(t.baseURL)
	if strings.HasPrefix(base, "https://") {
		base = "wss://" + strings.TrimPrefix(base, "https://")
	} else if strings.HasPrefix(base, "http://") {
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	base = strings.TrimRight(base, "/")

	listenURL, err := url.Parse(base + "/listen")
	if err != nil {
		return "", fmt.Errorf("invalid Deepgram API base URL: %w", err)
	}

	if cfg.Encoding == "" {
		cfg.Encoding = "linear16"
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels <= 0 {
		cfg.Channels = 1
	}

	query := listenURL.Query()
	query.Set("model", t.model)
	query.Set("encoding", cfg.Encoding)
	query.Set("sample_rate", fmt.Sprintf("%d", cfg.SampleRate))
	query.Set("channels", fmt.Sprintf("%d", cfg.Channels))
	query.Set("interim_results", "false")
	query.Set("smart_format", fmt.Sprintf("%t", t.smartFormat))
	if t.language != "" {
		query.Set("language", t.language)
	}
	listenURL.RawQuery = query.Encode()
	return listenURL.String(), nil
}
