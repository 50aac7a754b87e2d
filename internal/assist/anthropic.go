package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const defaultAPIURL = "https://api.anthropic.com/v1/messages"

// Anthropic talks to the Anthropic messages API.
type Anthropic struct {
	apiKey string
	model  string
	client *http.Client

	// APIURL is overridable so tests can point the client at a local server.
	APIURL string
}

// New returns an Assistant backed by the Anthropic API, or Disabled when
// apiKey is empty.
func New(apiKey string) Assistant {
	if apiKey == "" {
		return Disabled{}
	}
	return &Anthropic{
		apiKey: apiKey,
		model:  "claude-sonnet-4-20250514",
		client: http.DefaultClient,
		APIURL: defaultAPIURL,
	}
}

// EstimateTravelTime asks for a short free-text travel estimate between
// two locations for the given transport mode. Any failure yields the
// Unavailable sentinel; this method never reports an error to the caller.
func (a *Anthropic) EstimateTravelTime(ctx context.Context, origin, destination, modeLabel string) string {
	prompt := fmt.Sprintf(`I need an estimated travel time and distance between two locations.
Origin: %q
Destination: %q
Mode: %q

Please return a very short string describing the estimate, e.g., "15 分鐘 (3.5 公里)" or "1 小時 20 分鐘 (捷運轉乘)".
If the locations are ambiguous, give a best guess based on popular travel destinations.
Reply ONLY with the estimate string.`, origin, destination, modeLabel)

	text, err := a.call(ctx, prompt)
	if err != nil {
		slog.Warn("travel-time estimate failed", "origin", origin, "destination", destination, "error", err)
		return Unavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Unavailable
	}
	return text
}

// GeneratePackingList asks for a packing list as JSON and parses it into
// category proposals. Returns nil on any failure.
func (a *Anthropic) GeneratePackingList(ctx context.Context, destination string, days int, tripType string) []CategoryProposal {
	prompt := fmt.Sprintf(`Generate a travel packing list for a trip to %s for %d days. The trip type is %s.
Return a JSON object with a list of 'categories'. Each category has a 'name' (in Traditional Chinese, e.g. 衣物, 電子產品) and a list of 'items' (strings in Traditional Chinese).
Make the categories relevant to the trip type (e.g. if camping, include camping gear).
Return ONLY the JSON, no other text.`, destination, days, tripType)

	text, err := a.call(ctx, prompt)
	if err != nil {
		slog.Warn("packing-list generation failed", "destination", destination, "error", err)
		return nil
	}

	var parsed struct {
		Categories []CategoryProposal `json:"categories"`
	}
	if err := json.Unmarshal([]byte(stripFences(text)), &parsed); err != nil {
		slog.Warn("packing-list generation returned unparseable JSON", "error", err)
		return nil
	}
	return parsed.Categories
}

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// call sends one user message and returns the first text block of the reply.
func (a *Anthropic) call(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(apiRequest{
		Model:     a.model,
		MaxTokens: 1024,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, raw)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("api error: %s", parsed.Error.Message)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return parsed.Content[0].Text, nil
}

// stripFences removes a surrounding markdown code fence, which the model
// sometimes adds around JSON despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
