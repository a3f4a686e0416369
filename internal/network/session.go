package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/compound/internal/utils"
)

// Doer executes an HTTP request; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is a completed exchange: the descriptor, status, headers and full body
type Response struct {
	Request    Request
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Session sends request descriptors against one environment
type Session struct {
	env    Environment
	client Doer
	log    zerolog.Logger
	slow   time.Duration
}

// NewSession creates a session. A nil client gets a default *http.Client with a 15s timeout.
func NewSession(env Environment, client Doer, log zerolog.Logger) *Session {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &Session{
		env:    env,
		client: client,
		log:    log.With().Str("component", "network").Logger(),
		slow:   5 * time.Second,
	}
}

// Environment returns the environment requests are built against
func (s *Session) Environment() Environment {
	return s.env
}

// Send performs exactly one attempt. Build failures are KindInvalidRequest;
// every client or body read failure, cancellation included, is KindUnknown.
func (s *Session) Send(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := req.BuildHTTPRequest(ctx, s.env)
	if err != nil {
		s.log.Error().Err(err).Str("request", req.String()).Msg("Failed to build request")
		return nil, err
	}

	s.logRequest(httpReq, req)

	stop := utils.OperationTimer(req.String(), s.log, s.slow)
	defer stop()

	httpRes, err := s.client.Do(httpReq)
	if err != nil {
		return nil, newError(KindUnknown, fmt.Errorf("failed to make request: %w", err))
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, newError(KindUnknown, fmt.Errorf("failed to read response: %w", err))
	}

	s.log.Debug().
		Str("request", req.String()).
		Int("status", httpRes.StatusCode).
		Int("bytes", len(body)).
		Msg("Response received")

	return &Response{
		Request:    req,
		StatusCode: httpRes.StatusCode,
		Header:     httpRes.Header,
		Body:       body,
	}, nil
}

func (s *Session) logRequest(httpReq *http.Request, req Request) {
	if s.log.GetLevel() > zerolog.DebugLevel {
		return
	}

	event := s.log.Debug().
		Str("method", httpReq.Method).
		Str("url", httpReq.URL.String())

	headers := zerolog.Dict()
	for name := range httpReq.Header {
		headers.Str(name, httpReq.Header.Get(name))
	}
	event = event.Dict("headers", headers)

	switch {
	case len(req.Multipart()) > 0:
		event = event.Int("parts", len(req.Multipart()))
	case req.Body() != nil:
		event = event.Interface("body", req.Body())
	}

	event.Msg("Sending request")
}
