package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

const googleServiceName = "google-translate-v3"

// GoogleConfig configures the Google Cloud Translation v3 client.
type GoogleConfig struct {
	BaseURL  string
	APIKey   string
	Project  string
	Location string
	// GlossaryPrefix names the glossary family; the per-pair resource is
	// "{prefix}-{source}-{target}" under the configured project/location.
	GlossaryPrefix string
	RetryAttempts  uint
}

// GoogleClient calls the Google Cloud Translation v3 REST API.
type GoogleClient struct {
	httpClient     *resty.Client
	project        string
	location       string
	glossaryPrefix string
	retryAttempts  uint
}

var _ interfaces.TranslationProvider = (*GoogleClient)(nil)

// NewGoogleClient constructs a Google translation client.
func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://translation.googleapis.com"
	}
	location := cfg.Location
	if location == "" {
		location = "global"
	}
	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = 3
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetQueryParam("key", cfg.APIKey)
	}

	return &GoogleClient{
		httpClient:     client,
		project:        cfg.Project,
		location:       location,
		glossaryPrefix: cfg.GlossaryPrefix,
		retryAttempts:  attempts,
	}
}

// Close releases the underlying HTTP client.
func (c *GoogleClient) Close() error {
	return c.httpClient.Close()
}

// Name identifies the provider for cache bookkeeping.
func (c *GoogleClient) Name() string {
	return googleServiceName
}

type translateTextRequest struct {
	Contents           []string        `json:"contents"`
	MimeType           string          `json:"mimeType"`
	SourceLanguageCode string          `json:"sourceLanguageCode"`
	TargetLanguageCode string          `json:"targetLanguageCode"`
	GlossaryConfig     *glossaryConfig `json:"glossaryConfig,omitempty"`
}

type glossaryConfig struct {
	Glossary string `json:"glossary"`
}

type translateTextResponse struct {
	Translations         []translation `json:"translations"`
	GlossaryTranslations []translation `json:"glossaryTranslations"`
}

type translation struct {
	TranslatedText string `json:"translatedText"`
}

// Translate issues a translateText call, preferring glossary-biased output
// when requested. A missing or broken glossary falls back transparently to a
// plain call; transient transport failures are retried with backoff.
func (c *GoogleClient) Translate(ctx context.Context, req interfaces.TranslationRequest) (interfaces.TranslationResult, error) {
	source := ProviderTag(locales.Tag(req.SourceLocale))
	target := ProviderTag(locales.Tag(req.TargetLocale))

	if req.UseGlossary && c.glossaryPrefix != "" {
		result, err := c.translateOnce(ctx, req.Text, source, target, c.glossaryName(req.SourceLocale, req.TargetLocale))
		if err == nil {
			return result, nil
		}
		// Glossary resources are provisioned out-of-band; a pair without one
		// must not fail the request.
	}
	return c.translateOnce(ctx, req.Text, source, target, "")
}

func (c *GoogleClient) translateOnce(ctx context.Context, text, source, target, glossary string) (interfaces.TranslationResult, error) {
	body := translateTextRequest{
		Contents:           []string{text},
		MimeType:           "text/plain",
		SourceLanguageCode: source,
		TargetLanguageCode: target,
	}
	if glossary != "" {
		body.GlossaryConfig = &glossaryConfig{Glossary: glossary}
	}

	var decoded translateTextResponse
	err := retry.Do(
		func() error {
			response, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(body).
				SetResult(&translateTextResponse{}).
				Post(c.translatePath())
			if err != nil {
				return fmt.Errorf("httpClient.Post > %w", err)
			}
			if response.IsError() {
				return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
			}
			result := response.Result().(*translateTextResponse)
			if result == nil {
				return fmt.Errorf("empty response body: %s", response.String())
			}
			decoded = *result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.retryAttempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
	)
	if err != nil {
		return interfaces.TranslationResult{}, err
	}

	if glossary != "" && len(decoded.GlossaryTranslations) > 0 && decoded.GlossaryTranslations[0].TranslatedText != "" {
		return interfaces.TranslationResult{
			TranslatedText:  decoded.GlossaryTranslations[0].TranslatedText,
			GlossaryApplied: true,
			Service:         googleServiceName,
		}, nil
	}
	if len(decoded.Translations) == 0 {
		return interfaces.TranslationResult{}, fmt.Errorf("no translations in response")
	}
	return interfaces.TranslationResult{
		TranslatedText: decoded.Translations[0].TranslatedText,
		Service:        googleServiceName,
	}, nil
}

func (c *GoogleClient) translatePath() string {
	return fmt.Sprintf("/v3/projects/%s/locations/%s:translateText", c.project, c.location)
}

func (c *GoogleClient) glossaryName(source, target string) string {
	return fmt.Sprintf("projects/%s/locations/%s/glossaries/%s-%s-%s",
		c.project, c.location, c.glossaryPrefix, source, target)
}

// isRetryableError classifies transport and quota failures worth retrying.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	if strings.Contains(message, "connection refused") || strings.Contains(message, "i/o timeout") {
		return true
	}
	if strings.Contains(message, "response error 5") {
		return true
	}
	if strings.Contains(message, "response error 429") {
		return true
	}
	return false
}
