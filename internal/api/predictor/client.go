package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/model"
	"github.com/Alias1177/PronoFoot/internal/odds"
	httpClient "github.com/Alias1177/PronoFoot/internal/platform/http"
)

// Client calls the prediction API over HTTP
type Client struct {
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new prediction API client
type ClientOptions struct {
	BaseURL         string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetries      int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new prediction API client
func NewClient(options ClientOptions) *Client {
	httpOpts := httpClient.ClientOptions{
		Timeout:         options.RequestTimeout,
		RequestsPerSec:  options.RequestsPerSec,
		MaxRetries:      options.MaxRetries,
		MaxRetryTimeout: options.MaxRetryTimeout,
	}

	baseURL := strings.TrimRight(options.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient.NewClient(httpOpts),
		logger:     log.With().Str("component", "predictor_client").Logger(),
	}
}

// PredictOne fetches a prediction for one match. o may be nil.
func (c *Client) PredictOne(ctx context.Context, home, away string, o *odds.Odds) (model.PredictionResult, error) {
	params := url.Values{}
	params.Set("home", home)
	params.Set("away", away)
	if o != nil {
		params.Set("odds_home", formatOdd(o.Home))
		params.Set("odds_draw", formatOdd(o.Draw))
		params.Set("odds_away", formatOdd(o.Away))
	}

	endpoint := fmt.Sprintf("%s/predict_one?%s", c.baseURL, params.Encode())
	c.logger.Debug().Str("url", endpoint).Msg("Requesting prediction")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var result model.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.PredictionResult{}, fmt.Errorf("decoding prediction: %w", err)
	}

	return result, nil
}

// Health reports the service health payload from GET /health.
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	health := make(map[string]string)
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decoding health: %w", err)
	}
	return health, nil
}

func formatOdd(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
