package captcha

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrBotCheckFailed is returned when the challenge response is rejected.
// It blocks progression past the gated step; the user must retry.
var ErrBotCheckFailed = errors.New("bot check failed")

// Verifier validates a bot-check challenge response.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// HTTPVerifier posts the challenge token to the verification endpoint.
// Only the status code is consumed: non-2xx means the check failed.
type HTTPVerifier struct {
	verifyURL  string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier against the given endpoint.
func NewHTTPVerifier(verifyURL string) *HTTPVerifier {
	return &HTTPVerifier{
		verifyURL: verifyURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Verify posts {"captcha": token} and maps any non-2xx or transport
// failure to ErrBotCheckFailed.
func (v *HTTPVerifier) Verify(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrBotCheckFailed
	}

	body, err := json.Marshal(map[string]string{"captcha": token})
	if err != nil {
		return fmt.Errorf("failed to marshal captcha request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		log.Printf("[BOT CHECK] verification call failed: %v", err)
		return ErrBotCheckFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrBotCheckFailed
	}
	return nil
}

// StaticVerifier accepts any non-empty token. Development mode only.
type StaticVerifier struct{}

// Verify accepts non-empty tokens.
func (StaticVerifier) Verify(_ context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrBotCheckFailed
	}
	return nil
}

// New returns an HTTPVerifier when a verify URL is configured,
// otherwise the permissive development verifier.
func New(verifyURL string) Verifier {
	if verifyURL == "" {
		log.Printf("⚠️  Bot check in permissive mode (set CAPTCHA_VERIFY_URL for production)")
		return StaticVerifier{}
	}
	return NewHTTPVerifier(verifyURL)
}
