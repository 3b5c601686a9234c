package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// TemplateParameter is one positional slot of a registered template.
// The provider's slots cannot be omitted, so every declared parameter
// is always sent as a text component.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// templateRequest is the provider wire format for a template send.
type templateRequest struct {
	To         string              `json:"to"`
	Template   string              `json:"template"`
	Language   string              `json:"language"`
	Parameters []TemplateParameter `json:"parameters"`
}

// Client talks to the WhatsApp template-message provider. With no API
// URL configured it logs messages instead of sending (development mode).
type Client struct {
	apiURL     string
	token      string
	language   string
	httpClient *http.Client
}

// NewClient creates a new WhatsApp provider client
func NewClient(apiURL, token, language string) *Client {
	if apiURL != "" {
		log.Printf("✅ WhatsApp provider configured")
	} else {
		log.Printf("⚠️  WhatsApp in console-only mode (set WHATSAPP_API_URL for production)")
	}

	return &Client{
		apiURL:   apiURL,
		token:    token,
		language: language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendTemplate sends one registered template to a phone number with its
// ordered parameters. A non-2xx provider response is an error; the
// caller decides whether that matters.
func (c *Client) SendTemplate(ctx context.Context, to, template string, params []string) error {
	parameters := make([]TemplateParameter, len(params))
	for i, p := range params {
		parameters[i] = TemplateParameter{Type: "text", Text: p}
	}

	if c.apiURL == "" {
		log.Printf("💬 [WHATSAPP] template=%s to=%s params=%v", template, to, params)
		log.Printf("   ⚠️  Message NOT sent (development mode)")
		return nil
	}

	body, err := json.Marshal(templateRequest{
		To:         to,
		Template:   template,
		Language:   c.language,
		Parameters: parameters,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal template request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp provider call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp provider returned status %d", resp.StatusCode)
	}

	return nil
}
