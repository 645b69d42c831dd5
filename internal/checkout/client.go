package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/domain"
)

// OrderClient submits an assembled payload to the order-creation boundary
// and returns the created order id.
// Consumers define this interface, not the HTTP implementation.
type OrderClient interface {
	CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error)
}

// APIClient posts orders to the backend order API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type orderCreatedResponse struct {
	ID string `json:"id"`
}

// orderErrorResponse matches the backend's error envelope: detail is either
// a plain message or a list of {loc, msg} field rejections.
type orderErrorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func (c *APIClient) CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal order payload failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders/", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read order response failed: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		var created orderCreatedResponse
		if err := json.Unmarshal(respBody, &created); err != nil {
			return "", fmt.Errorf("decode order response failed: %w", err)
		}
		if created.ID == "" {
			return "", fmt.Errorf("order response missing id")
		}
		return created.ID, nil
	}

	if resp.StatusCode >= 400 && resp.StatusCode <= 499 {
		if verr := parseValidationDetail(respBody); verr != nil {
			return "", verr
		}
	}

	return "", fmt.Errorf("order API responded with status %d", resp.StatusCode)
}

// parseValidationDetail extracts field-level errors from a 4xx body. Returns
// nil when the body carries no usable detail, in which case the caller falls
// back to a generic failure.
func parseValidationDetail(body []byte) error {
	var envelope orderErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return nil
	}

	var message string
	if err := json.Unmarshal(envelope.Detail, &message); err == nil {
		return &domain.ValidationError{Fields: []domain.FieldError{{Message: message}}}
	}

	var details []fieldDetail
	if err := json.Unmarshal(envelope.Detail, &details); err != nil || len(details) == 0 {
		return nil
	}

	fields := make([]domain.FieldError, 0, len(details))
	for _, d := range details {
		fields = append(fields, domain.FieldError{
			Field:   lastLoc(d.Loc),
			Message: d.Msg,
		})
	}
	return &domain.ValidationError{Fields: fields}
}

// lastLoc renders the final element of a detail location path, which names
// the rejected field. Elements may be strings or array indexes.
func lastLoc(loc []any) string {
	if len(loc) == 0 {
		return ""
	}
	switch v := loc[len(loc)-1].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%d", int(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
