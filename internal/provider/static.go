package provider

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-translate/pkg/interfaces"
)

// StaticClient is a deterministic in-process provider used in tests and
// offline development. Unmapped requests echo the source text bracketed with
// the target locale so output stays traceable.
type StaticClient struct {
	mu         sync.RWMutex
	responses  map[string]string
	err        error
	localeErrs map[string]error
	calls      atomic.Int64
}

var _ interfaces.TranslationProvider = (*StaticClient)(nil)

// NewStaticClient constructs an empty static provider.
func NewStaticClient() *StaticClient {
	return &StaticClient{
		responses:  make(map[string]string),
		localeErrs: make(map[string]error),
	}
}

// Name identifies the provider for cache bookkeeping.
func (c *StaticClient) Name() string {
	return "static"
}

// Map registers a canned translation for (text, target locale).
func (c *StaticClient) Map(text, targetLocale, translated string) *StaticClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[text+"\x00"+targetLocale] = translated
	return c
}

// Fail configures every subsequent call to return the supplied error.
func (c *StaticClient) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// FailLocale configures calls targeting one locale to return the supplied
// error while other locales keep working.
func (c *StaticClient) FailLocale(targetLocale string, err error) *StaticClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.localeErrs[targetLocale] = err
	return c
}

// Calls reports how many Translate invocations reached the client.
func (c *StaticClient) Calls() int64 {
	return c.calls.Load()
}

// Translate returns the canned translation or an echo of the source text.
func (c *StaticClient) Translate(ctx context.Context, req interfaces.TranslationRequest) (interfaces.TranslationResult, error) {
	c.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return interfaces.TranslationResult{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return interfaces.TranslationResult{}, c.err
	}
	if err, ok := c.localeErrs[req.TargetLocale]; ok && err != nil {
		return interfaces.TranslationResult{}, err
	}
	if translated, ok := c.responses[req.Text+"\x00"+req.TargetLocale]; ok {
		return interfaces.TranslationResult{TranslatedText: translated, Service: c.Name()}, nil
	}
	return interfaces.TranslationResult{
		TranslatedText: "[" + req.TargetLocale + "] " + req.Text,
		Service:        c.Name(),
	}, nil
}
