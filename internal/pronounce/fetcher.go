package pronounce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Defaults for the completion endpoint. They can be overridden per
// Fetcher through Config.
const (
	DefaultEndpoint  = "https://api.together.xyz/completions"
	DefaultModel     = "meta-llama/Llama-3-70b-chat-hf"
	DefaultMaxTokens = 200
	DefaultTimeout   = 30 * time.Second
)

// Config holds the settings for a Fetcher. Zero values fall back to the
// package defaults; a nil Logger disables stage logging.
type Config struct {
	APIKey    string
	Endpoint  string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	Logger    *slog.Logger
}

// Fetcher fetches pronunciation guides for English words from the
// completion endpoint.
type Fetcher struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewFetcher creates a new pronunciation fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Fetcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "completion-api",
			Timeout: cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
		logger: logger,
	}
}

// completionRequest is the request body for the completion endpoint.
// Temperature stays at zero for deterministic decoding.
type completionRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

// completionResponse covers the part of the endpoint's reply we use.
type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

// completionReply carries the raw HTTP outcome of one completion call.
type completionReply struct {
	status int
	body   []byte
}

// Fetch returns exactly one Result for the given word: either a
// pronunciation or an error-shaped result. It never lets a fault
// escape past its boundary.
func (f *Fetcher) Fetch(ctx context.Context, word string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("panic while fetching pronunciation", "word", word, "panic", r)
			result = unexpectedFailure(word, fmt.Sprint(r))
		}
	}()

	f.logger.Info("processing word", "word", word)

	prompt := BuildPrompt(word)
	f.logger.Debug("prompt built", "word", word, "length", len(prompt))

	reply, err := f.complete(ctx, prompt)
	if err != nil {
		return f.transportFailure(word, err)
	}

	f.logger.Info("API response received", "word", word, "status", reply.status)

	if reply.status != http.StatusOK {
		f.logger.Error("API request failed", "word", word, "status", reply.status, "body", string(reply.body))
		return statusFailure(word, reply.status, string(reply.body))
	}

	var completion completionResponse
	if err := json.Unmarshal(reply.body, &completion); err != nil {
		f.logger.Error("malformed API response", "word", word, "error", err)
		return unexpectedFailure(word, fmt.Sprintf("malformed API response: %v", err))
	}
	if len(completion.Choices) == 0 {
		f.logger.Error("no completion choices in API response", "word", word)
		return unexpectedFailure(word, "no completion choices in API response")
	}

	outputText := completion.Choices[0].Text
	cleaned := CleanCompletionText(outputText)
	f.logger.Debug("completion text cleaned", "word", word, "cleaned", cleaned)

	var parsed struct {
		Word                string `json:"word"`
		Pronunciation       string `json:"pronunciation"`
		PronunciationTelugu string `json:"pronunciation_telugu"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		f.logger.Error("failed to parse completion as JSON", "word", word, "error", err, "raw", outputText)
		return parseFailure(word, outputText)
	}
	if parsed.Word == "" || parsed.Pronunciation == "" || parsed.PronunciationTelugu == "" {
		f.logger.Error("completion JSON missing required fields", "word", word, "raw", outputText)
		return incomplete(word, outputText)
	}

	f.logger.Info("pronunciation fetched", "word", word, "pronunciation", parsed.Pronunciation)
	return Result{
		Word:                parsed.Word,
		Pronunciation:       parsed.Pronunciation,
		PronunciationTelugu: parsed.PronunciationTelugu,
	}
}

// complete submits one prompt to the completion endpoint. The call runs
// through the circuit breaker so repeated transport failures fail fast
// instead of each burning the full timeout.
func (f *Fetcher) complete(ctx context.Context, prompt string) (*completionReply, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       f.cfg.Model,
		Prompt:      prompt,
		MaxTokens:   f.cfg.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	f.logger.Debug("sending API request", "endpoint", f.cfg.Endpoint, "model", f.cfg.Model,
		"max_tokens", f.cfg.MaxTokens)

	v, err := f.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.Endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+f.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		return &completionReply{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*completionReply), nil
}

// transportFailure maps a transport-level error onto the error taxonomy.
func (f *Fetcher) transportFailure(word string, err error) Result {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		f.logger.Error("completion API circuit open", "word", word, "error", err)
		return connectionFailure(word, "completion API unavailable: "+err.Error())
	case isTimeout(err):
		f.logger.Error("API request timeout", "word", word)
		return timeoutFailure(word)
	default:
		f.logger.Error("connection error", "word", word, "error", err)
		return connectionFailure(word, err.Error())
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// CleanCompletionText strips surrounding whitespace and stray code
// fence backticks from raw model output. Applying it twice yields the
// same string.
func CleanCompletionText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	return strings.TrimSpace(s)
}
