// Package neis talks to the NEIS open API meal service
// (https://open.neis.go.kr/hub/mealServiceDietInfo).
package neis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://open.neis.go.kr"
	DefaultTimeout = 10 * time.Second

	dietInfoPath = "/hub/mealServiceDietInfo"
)

// Config identifies the school whose meals are fetched.
type Config struct {
	BaseURL    string
	OfficeCode string // ATPT_OFCDC_SC_CODE, e.g. B10 for Seoul
	SchoolCode string // SD_SCHUL_CODE
	APIKey     string // optional; NEIS serves a small sample without one
	Timeout    time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FormatDate renders t the way MLSV_YMD is queried (YYMMDD).
func FormatDate(t time.Time) string {
	return t.Format("060102")
}

func (c *Client) mealsURL(date time.Time) string {
	q := url.Values{}
	q.Set("ATPT_OFCDC_SC_CODE", c.cfg.OfficeCode)
	q.Set("SD_SCHUL_CODE", c.cfg.SchoolCode)
	q.Set("Type", "json")
	q.Set("MLSV_YMD", FormatDate(date))
	if c.cfg.APIKey != "" {
		q.Set("KEY", c.cfg.APIKey)
	}
	return c.cfg.BaseURL + dietInfoPath + "?" + q.Encode()
}

// Meals fetches the meals served on date. It makes exactly one request.
// Errors wrap ErrTransport, ErrMalformed or ErrNoMeal.
func (c *Client) Meals(ctx context.Context, date time.Time) ([]MealRecord, error) {
	start := time.Now()
	ymd := FormatDate(date)
	log := c.logger.With(zap.String("date", ymd), zap.String("school", c.cfg.SchoolCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.mealsURL(date), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("meal service request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("meal service returned error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("reading meal service response failed", zap.Error(err))
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	records, err := decodeMeals(body)
	if err != nil {
		log.Info("no meals decoded", zap.Error(err), zap.Duration("took", time.Since(start)))
		return nil, err
	}

	log.Debug("loaded meals", zap.Int("count", len(records)), zap.Duration("took", time.Since(start)))
	return records, nil
}

func decodeMeals(body []byte) ([]MealRecord, error) {
	var env dietInfoResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if env.DietInfo == nil {
		if env.Result == nil || env.Result.Code == resultNoData {
			return nil, ErrNoMeal
		}
		return nil, fmt.Errorf("%w: %s %s", ErrMalformed, env.Result.Code, env.Result.Message)
	}
	if len(env.DietInfo) < 2 {
		return nil, fmt.Errorf("%w: envelope has %d elements", ErrMalformed, len(env.DietInfo))
	}

	var head dietInfoHead
	if err := json.Unmarshal(env.DietInfo[0], &head); err == nil {
		for _, h := range head.Head {
			if h.Result != nil && h.Result.Code != resultOK {
				return nil, fmt.Errorf("%w: %s %s", ErrMalformed, h.Result.Code, h.Result.Message)
			}
		}
	}

	var payload dietInfoRows
	if err := json.Unmarshal(env.DietInfo[1], &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if payload.Rows == nil {
		return nil, fmt.Errorf("%w: missing row", ErrMalformed)
	}
	if len(*payload.Rows) == 0 {
		return nil, ErrNoMeal
	}

	records := make([]MealRecord, 0, len(*payload.Rows))
	for _, r := range *payload.Rows {
		records = append(records, MealRecord{
			Date:         r.Date,
			SchoolName:   r.SchoolName,
			MealName:     r.MealName,
			Dishes:       CleanDishes(r.Dishes),
			NutritionRaw: r.Nutrition,
			CalorieRaw:   r.CalorieInfo,
		})
	}
	return records, nil
}
