package identify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	messagesURL  = "https://api.anthropic.com/v1/messages"
	apiVersion   = "2023-06-01"
	defaultModel = "claude-sonnet-4-20250514"
)

const prompt = `This is a fountain pen. Please identify it and return a JSON object with these exact fields:
- brand: manufacturer name (string, e.g. "Pilot", "Lamy", "TWSBI")
- model: model name (string, e.g. "Metropolitan", "Safari", "Eco")
- color: body color description (string, e.g. "Black", "Navy Blue", "Clear Demonstrator")
- nib_size: nib size (string, one of: "EF", "XF", "F", "M", "B", "BB", "1.0mm", "1.1mm", "1.5mm", "Flex", "Oblique", "Other")
- nib_material: nib material (string, one of: "Steel", "Gold (14k)", "Gold (18k)", "Gold (21k)", "Titanium", "Unknown")
- nib_type: nib type (string, one of: "Regular", "Flex", "Italic", "Stub", "Cursive Italic", "Architect", "Reverse", "Zoom", "Other")
- fill_system: fill system (string, one of: "Cartridge/Converter", "Piston", "Eyedropper", "Vacuum", "Squeeze", "Button", "Coin", "Aerometric", "Unknown")

Use empty string "" for any field you cannot determine. Respond with only the raw JSON object, no markdown, no explanation.`

// AnthropicClient identifies pens through the Anthropic Messages API.
type AnthropicClient struct {
	APIKey string
	Model  string
	HTTP   *http.Client

	url string
}

// NewAnthropicClient creates a client with a sensible request timeout.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		APIKey: apiKey,
		Model:  defaultModel,
		HTTP:   &http.Client{Timeout: 60 * time.Second},
		url:    messagesURL,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Identify sends the image and prompt in one request and parses the JSON
// object the model returns. No retries; the caller degrades gracefully.
func (c *AnthropicClient) Identify(ctx context.Context, image []byte, mime string) (*Guess, error) {
	reqBody := messagesRequest{
		Model:     c.Model,
		MaxTokens: 1024,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{
					Type: "image",
					Source: &imageSource{
						Type:      "base64",
						MediaType: mime,
						Data:      base64.StdEncoding.EncodeToString(image),
					},
				},
				{Type: "text", Text: prompt},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding identify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building identify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API returned status %d", resp.StatusCode)
	}

	var msg messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decoding identify response: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, fmt.Errorf("no text in vision API response")
	}

	return parseGuess(text)
}

// parseGuess extracts the JSON object from the model's reply, tolerating
// stray text or a markdown fence around it.
func parseGuess(text string) (*Guess, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in vision API response")
	}

	guess := &Guess{}
	if err := json.Unmarshal([]byte(text[start:end+1]), guess); err != nil {
		return nil, fmt.Errorf("parsing identification: %w", err)
	}
	return guess, nil
}
