// Package gemini implements the suggestion gateway on the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
)

// Config captures the gateway settings.
type Config struct {
	APIKey        string
	Model         string
	Venue         string
	Timeout       time.Duration
	RatePerMinute int
}

// generator is the subset of *genai.Models used by the gateway.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gateway asks Gemini for an event concept. Calls are throttled and bounded
// by a timeout.
type Gateway struct {
	models  generator
	model   string
	venue   string
	timeout time.Duration
	limiter *rate.Limiter
}

// New creates a Gemini API client.
func New(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return newGateway(client.Models, cfg), nil
}

func newGateway(models generator, cfg Config) *Gateway {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	limit := rate.Inf
	burst := 1
	if cfg.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RatePerMinute))
		burst = cfg.RatePerMinute
	}
	return &Gateway{
		models:  models,
		model:   cfg.Model,
		venue:   cfg.Venue,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Suggest returns the generated text. Waiting for the limiter counts against
// the timeout.
func (g *Gateway) Suggest(ctx context.Context, r domain.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("gemini rate limit: %w", err)
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(g.venue, r)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
