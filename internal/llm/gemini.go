package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient() *GeminiClient {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --------------------------------------------------
// Wire shapes
// --------------------------------------------------

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	Tools            []tool            `json:"tools,omitempty"`
	ToolConfig       *toolConfig       `json:"toolConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type tool struct {
	GoogleMaps *struct{} `json:"googleMaps,omitempty"`
}

type toolConfig struct {
	RetrievalConfig retrievalConfig `json:"retrievalConfig"`
}

type retrievalConfig struct {
	LatLng latLng `json:"latLng"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []GroundingChunk `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

// --------------------------------------------------
// Schema-constrained generation
// --------------------------------------------------

func (g *GeminiClient) GenerateJSON(
	ctx context.Context,
	prompt string,
	schema Schema,
	temperature float64,
) (string, error) {

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			Temperature:      temperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   &schema,
		},
	}

	resp, err := g.generate(ctx, payload)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	output := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)

	if !json.Valid([]byte(output)) {
		return "", errors.New("gemini returned non-json output")
	}

	return output, nil
}

// --------------------------------------------------
// Maps-grounded generation
// --------------------------------------------------

func (g *GeminiClient) GenerateGrounded(
	ctx context.Context,
	prompt string,
	latitude float64,
	longitude float64,
) ([]GroundingChunk, error) {

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		Tools: []tool{
			{GoogleMaps: &struct{}{}},
		},
		ToolConfig: &toolConfig{
			RetrievalConfig: retrievalConfig{
				LatLng: latLng{Latitude: latitude, Longitude: longitude},
			},
		},
	}

	resp, err := g.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	// A grounded answer without grounding metadata is a valid outcome.
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil, nil
	}

	return resp.Candidates[0].GroundingMetadata.GroundingChunks, nil
}

// --------------------------------------------------
// Shared request plumbing
// --------------------------------------------------

func (g *GeminiClient) generate(ctx context.Context, payload generateRequest) (*generateResponse, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		g.baseURL,
		g.model,
		g.apiKey,
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
