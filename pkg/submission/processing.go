package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/intake"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// Receipt is the processing endpoint's acknowledgement of an accepted
// lead. ReferenceID may be empty when a remote endpoint does not echo
// one back; the coordinator then mints its own.
type Receipt struct {
	ReferenceID string `json:"reference_id"`
}

// ProcessingClient hands a fully assembled payload to the lead
// processing side. Implementations decide whether that is a remote
// endpoint or the in-process intake service.
type ProcessingClient interface {
	Process(ctx context.Context, kind models.Kind, payload models.Fields) (*Receipt, error)
}

// HTTPProcessingClient posts payloads to a remote processing base URL,
// one endpoint per form kind.
type HTTPProcessingClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPProcessingClient(baseURL string) *HTTPProcessingClient {
	return &HTTPProcessingClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *HTTPProcessingClient) Process(ctx context.Context, kind models.Kind, payload models.Fields) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("processing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("processing endpoint returned status %d: %s", resp.StatusCode, string(raw))
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		// A 2xx with an unreadable body is still an accepted lead.
		return &Receipt{}, nil
	}
	return &receipt, nil
}

// LocalClient routes payloads to the in-process intake service. This is
// the default when no remote processing base URL is configured.
type LocalClient struct {
	intake *intake.Service
}

func NewLocalClient(s *intake.Service) *LocalClient {
	return &LocalClient{intake: s}
}

func (c *LocalClient) Process(ctx context.Context, kind models.Kind, payload models.Fields) (*Receipt, error) {
	lead, err := c.intake.Accept(ctx, kind, payload)
	if err != nil {
		return nil, err
	}
	return &Receipt{ReferenceID: lead.ReferenceID}, nil
}
