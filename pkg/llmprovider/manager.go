package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	PerCallTimeout  time.Duration // deadline for one provider attempt
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// DefaultPerCallTimeout bounds a single model invocation.
const DefaultPerCallTimeout = 10 * time.Second

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.PerCallTimeout <= 0 {
		config.PerCallTimeout = DefaultPerCallTimeout
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global deadline exceeded: %v", ErrTimeout, ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		// Credential failures are configuration problems; trying the same
		// provider chain again cannot fix them mid-request, but a different
		// provider with its own key still can.
		if !m.config.FallbackEnabled {
			break
		}
	}

	if errors.Is(lastErr, ErrAuth) || errors.Is(lastErr, ErrRateLimited) || errors.Is(lastErr, ErrTimeout) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry with linear backoff for one provider.
// Auth errors are never retried.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
			}
		}

		resp, err := m.generateOnce(ctx, provider, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if errors.Is(err, ErrAuth) {
			break
		}
	}

	return nil, lastErr
}

func (m *Manager) generateOnce(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, m.config.PerCallTimeout)
	defer cancel()

	resp, err := provider.GenerateContent(callCtx, req)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, &ProviderError{Provider: provider.Name(), Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
		}
		return nil, err
	}
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed provider=%s model=%s error=%v",
		provider.Name(), provider.Model(), err)
}
