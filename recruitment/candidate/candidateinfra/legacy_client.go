package candidateinfra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/talentflow/recruitment-api/pkg/kernel"
	"github.com/talentflow/recruitment-api/pkg/logx"
	"github.com/talentflow/recruitment-api/recruitment/candidate"
)

const (
	sendTimeout   = 5 * time.Second
	healthTimeout = 3 * time.Second
	maxRedirects  = 3
)

// LegacyAPIClient notifies the external legacy system over HTTP. Every
// failure path resolves to a SyncOutcome; this client never returns an
// error to its caller.
type LegacyAPIClient struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	healthClient *http.Client
}

// NewLegacyAPIClient creates a client for the configured legacy endpoint
func NewLegacyAPIClient(baseURL, apiKey string) *LegacyAPIClient {
	checkRedirect := func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	logx.Infof("Legacy API URL configured: %s", baseURL)

	return &LegacyAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout:       sendTimeout,
			CheckRedirect: checkRedirect,
		},
		healthClient: &http.Client{
			Timeout:       healthTimeout,
			CheckRedirect: checkRedirect,
		},
	}
}

type legacyCandidatePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type legacyResponseBody struct {
	Message string `json:"message"`
}

// SendCandidate posts the candidate to the legacy system. A single
// attempt, bounded by the client timeout; the outcome is advisory.
func (c *LegacyAPIClient) SendCandidate(ctx context.Context, firstName, lastName string, email kernel.Email) candidate.SyncOutcome {
	attemptID := uuid.NewString()
	logx.Infof("Sending candidate to legacy API: %s (attempt %s)", email, attemptID)

	payload, err := json.Marshal(legacyCandidatePayload{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email.String(),
	})
	if err != nil {
		return candidate.SyncOutcome{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/candidates", bytes.NewReader(payload))
	if err != nil {
		return candidate.SyncOutcome{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		logx.Errorf("Legacy API error for %s (attempt %s): %v", email, attemptID, err)
		return candidate.SyncOutcome{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	body := decodeLegacyBody(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logx.Infof("Legacy API success for %s (attempt %s): %d", email, attemptID, resp.StatusCode)
		return candidate.SyncOutcome{Success: true, Message: body.Message}
	}

	logx.Errorf("Legacy API error for %s (attempt %s): status %d", email, attemptID, resp.StatusCode)

	errMsg := body.Message
	if errMsg == "" {
		errMsg = "Legacy API error"
	}
	return candidate.SyncOutcome{Success: false, Error: errMsg}
}

// HealthCheck probes the legacy root endpoint, swallowing all errors
func (c *LegacyAPIClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		logx.Warn("Legacy API health check failed - API may be unavailable")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func decodeLegacyBody(r io.Reader) legacyResponseBody {
	var body legacyResponseBody
	data, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return body
	}
	if err := json.Unmarshal(data, &body); err != nil {
		// Non-JSON bodies are fine; the message just stays empty
		return legacyResponseBody{}
	}
	return body
}

var _ candidate.LegacySyncer = (*LegacyAPIClient)(nil)

// Stringer for debug logging without exposing the API key
func (c *LegacyAPIClient) String() string {
	return fmt.Sprintf("LegacyAPIClient{baseURL: %s}", c.baseURL)
}
