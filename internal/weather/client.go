package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ukydev/trip-planner/internal/config"
	"github.com/ukydev/trip-planner/internal/models"
	"golang.org/x/time/rate"
)

// ErrNoReading is returned when the service answers without current weather.
var ErrNoReading = errors.New("no current weather in response")

// Reading is the current weather at a location.
type Reading struct {
	Temperature int `json:"temp"` // degrees Celsius, rounded
	Code        int `json:"code"`
}

// Icon returns the icon category of the reading.
func (r Reading) Icon() string { return Icon(r.Code) }

// Fetcher returns the current weather at a location.
type Fetcher interface {
	Current(ctx context.Context, loc models.Location) (Reading, error)
}

// Client queries the Open-Meteo forecast API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client from cfg. Lookups are spaced at least cfg.Every apart.
func NewClient(cfg config.WeatherConfig) *Client {
	limit := rate.Inf
	if cfg.Every > 0 {
		limit = rate.Every(cfg.Every)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
	}
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current fetches the current weather at loc.
func (c *Client) Current(ctx context.Context, loc models.Location) (Reading, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Reading{}, err
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	q.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return Reading{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("weather lookup failed with status: %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Reading{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if body.CurrentWeather == nil {
		return Reading{}, ErrNoReading
	}
	return Reading{
		Temperature: int(math.Floor(body.CurrentWeather.Temperature + 0.5)),
		Code:        body.CurrentWeather.WeatherCode,
	}, nil
}
