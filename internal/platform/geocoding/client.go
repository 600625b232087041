package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ShriduttPatel121/MERN-BACKEND/internal/config"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/domain"
	"github.com/ShriduttPatel121/MERN-BACKEND/internal/platform/logger"
)

// Client is a Geocoder backed by a Nominatim-compatible HTTP search API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements the Geocoder interface
var _ Geocoder = (*Client)(nil)

// NewClient creates a geocoding client from the gateway configuration.
func NewClient(cfg config.GeocodingConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.With(slog.String("component", "geocoding_client")),
	}
}

// searchResult is the subset of the gateway's response we consume.
// Nominatim returns coordinates as JSON strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve implements Geocoder.Resolve.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s",
		c.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("geocoding request failed", slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Error("geocoding gateway returned non-OK status",
			slog.Int("status_code", resp.StatusCode))
		return domain.Location{}, fmt.Errorf("%w: status %d", ErrGatewayUnavailable, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Error("failed to decode geocoding response", slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if len(results) == 0 {
		log.Debug("no geocoding result for address")
		return domain.Location{}, ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: bad latitude %q", ErrGatewayUnavailable, results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: bad longitude %q", ErrGatewayUnavailable, results[0].Lon)
	}

	loc := domain.Location{Lat: lat, Lng: lng}
	if !loc.Valid() {
		return domain.Location{}, fmt.Errorf("%w: coordinates out of range", ErrGatewayUnavailable)
	}

	log.Debug("address resolved",
		slog.Float64("lat", loc.Lat),
		slog.Float64("lng", loc.Lng))
	return loc, nil
}
