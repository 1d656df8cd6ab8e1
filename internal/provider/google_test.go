package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-translate/pkg/interfaces"
)

func newGoogleTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *GoogleClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewGoogleClient(GoogleConfig{
		BaseURL:        server.URL,
		Project:        "tcg-market",
		GlossaryPrefix: "cards",
		RetryAttempts:  1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestGoogleClientTranslate(t *testing.T) {
	var captured translateTextRequest
	_, client := newGoogleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/projects/tcg-market/locations/global:translateText" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(translateTextResponse{
			Translations: []translation{{TranslatedText: "test"}},
		})
	})

	result, err := client.Translate(context.Background(), interfaces.TranslationRequest{
		Text:         "テスト",
		SourceLocale: "ja",
		TargetLocale: "zh-tw",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if result.TranslatedText != "test" || result.GlossaryApplied {
		t.Fatalf("Translate() = %+v", result)
	}
	if captured.SourceLanguageCode != "ja" || captured.TargetLanguageCode != "zh-TW" {
		t.Fatalf("language codes = %q -> %q, want provider casing", captured.SourceLanguageCode, captured.TargetLanguageCode)
	}
	if captured.GlossaryConfig != nil {
		t.Fatal("glossary config sent without UseGlossary")
	}
}

func TestGoogleClientGlossaryPreferred(t *testing.T) {
	_, client := newGoogleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req translateTextRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.GlossaryConfig == nil {
			t.Fatal("expected glossary config on first call")
		}
		if req.GlossaryConfig.Glossary != "projects/tcg-market/locations/global/glossaries/cards-ja-en" {
			t.Fatalf("glossary resource = %q", req.GlossaryConfig.Glossary)
		}
		_ = json.NewEncoder(w).Encode(translateTextResponse{
			Translations:         []translation{{TranslatedText: "generic"}},
			GlossaryTranslations: []translation{{TranslatedText: "Pikachu ex"}},
		})
	})

	result, err := client.Translate(context.Background(), interfaces.TranslationRequest{
		Text:         "ピカチュウex",
		SourceLocale: "ja",
		TargetLocale: "en",
		UseGlossary:  true,
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !result.GlossaryApplied || result.TranslatedText != "Pikachu ex" {
		t.Fatalf("Translate() = %+v, want glossary-biased output", result)
	}
}

func TestGoogleClientGlossaryMissingFallsBack(t *testing.T) {
	calls := 0
	_, client := newGoogleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req translateTextRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.GlossaryConfig != nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"message":"glossary not found"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(translateTextResponse{
			Translations: []translation{{TranslatedText: "test"}},
		})
	})

	result, err := client.Translate(context.Background(), interfaces.TranslationRequest{
		Text:         "テスト",
		SourceLocale: "ja",
		TargetLocale: "en",
		UseGlossary:  true,
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if result.TranslatedText != "test" || result.GlossaryApplied {
		t.Fatalf("Translate() = %+v, want plain fallback", result)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want glossary attempt then plain call", calls)
	}
}

func TestGoogleClientServerError(t *testing.T) {
	_, client := newGoogleTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"API key invalid"}}`))
	})

	if _, err := client.Translate(context.Background(), interfaces.TranslationRequest{
		Text:         "テスト",
		SourceLocale: "ja",
		TargetLocale: "en",
	}); err == nil {
		t.Fatal("Translate() error = nil, want auth failure")
	}
}
