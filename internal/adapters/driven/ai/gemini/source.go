// Package gemini provides a RecipeSource adapter backed by the Gemini
// generateContent API with schema-constrained JSON output.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// Ensure RecipeSource implements the interface.
var _ driven.RecipeSource = (*RecipeSource)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 120 * time.Second

	// Free-tier friendly: a recipe search is a heavyweight call, so the
	// sustained rate stays well below the API quota.
	requestsPerSecond = 0.5
	burstSize         = 2
)

// Config holds configuration for the Gemini recipe source.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL is the API base URL (default: the public Gemini endpoint).
	BaseURL string

	// Model is the generative model to use (default: gemini-2.5-flash).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// RecipeSource fetches recipe suggestions from the Gemini API.
type RecipeSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *rate.Limiter
}

// generateContentRequest is the Gemini generateContent request format.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// generateContentResponse is the Gemini generateContent response format.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewRecipeSource creates a new Gemini recipe source.
func NewRecipeSource(cfg Config) (*RecipeSource, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &RecipeSource{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}, nil
}

// FetchRecipes asks the model for recipe suggestions matching the
// query. Each returned recipe carries a freshly minted unique ID.
// Transport and API failures surface as domain.ErrRecipeFetch; a 200
// response whose payload does not decode surfaces as
// domain.ErrBadRecipePayload.
func (s *RecipeSource) FetchRecipes(ctx context.Context, query domain.Query) ([]domain.Recipe, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: buildPrompt(query)}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   recipeResponseSchema(),
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecipeFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrRecipeFetch, err)
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("%w: decoding envelope: %v", domain.ErrRecipeFetch, err)
	}

	if genResp.Error != nil {
		return nil, fmt.Errorf("%w: %s (status %s)", domain.ErrRecipeFetch, genResp.Error.Message, genResp.Error.Status)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRecipeFetch, resp.StatusCode)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no candidates returned", domain.ErrBadRecipePayload)
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	var recipes []domain.Recipe
	if err := json.Unmarshal([]byte(text), &recipes); err != nil {
		logger.Debug("unparseable recipe payload: %.200s", text)
		return nil, fmt.Errorf("%w: %v", domain.ErrBadRecipePayload, err)
	}

	for i := range recipes {
		recipes[i].ID = domain.NewRecipeID()
	}

	logger.Debug("gemini returned %d recipes", len(recipes))
	return recipes, nil
}
