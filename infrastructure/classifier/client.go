// Package classifier provides the concrete text-classification capabilities
// behind the sentiment adapter: a remote inference client and a local
// deterministic lexicon model.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Client calls a remote sentiment inference endpoint. Any transport failure,
// timeout or non-2xx response surfaces as domain.ErrClassifierUnavailable so
// callers can degrade instead of failing the whole report.
type Client struct {
	httpClient   *http.Client
	url          string
	apiKey       string
	modelVersion string
}

type inferenceRequest struct {
	Text string `json:"text"`
}

type inferenceResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second,
		},
		url:          cfg.Classifier.URL,
		apiKey:       cfg.Classifier.APIKey,
		modelVersion: cfg.Classifier.ModelVersion,
	}
}

func (c *Client) ModelVersion() string {
	return c.modelVersion
}

func (c *Client) Classify(ctx context.Context, text string) (domain.Classification, error) {
	body, err := json.Marshal(inferenceRequest{Text: text})
	if err != nil {
		return domain.Classification{}, errors.Wrap(err, "failed to encode inference request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.Classification{}, errors.Wrap(err, "failed to build inference request")
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Classification{}, errors.Wrapf(domain.ErrClassifierUnavailable, "inference request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Classification{}, errors.Wrapf(domain.ErrClassifierUnavailable, "inference endpoint returned status %d", resp.StatusCode)
	}

	var result inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Classification{}, errors.Wrap(domain.ErrClassifierUnavailable, "failed to decode inference response")
	}

	return domain.Classification{
		Label:      domain.ParseSentimentLabel(result.Label),
		Confidence: result.Score,
	}, nil
}
