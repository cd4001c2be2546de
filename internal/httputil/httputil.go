// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the components that call
// external services, and the error taxonomy used to describe their failures.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/pdiddy/news-research/pkg/types"
)

// ErrMalformed marks a response whose body could not be decoded into the
// expected shape.
var ErrMalformed = errors.New("malformed response")

// maxErrorBody bounds how much of an error response body is read.
const maxErrorBody = 4096

// StatusError reports a non-success response from an upstream service.
type StatusError struct {
	// Service names the upstream (e.g. "newsapi", "groq").
	Service string

	// StatusCode is the HTTP status returned.
	StatusCode int

	// Code is the service-level error code, when the payload carries one.
	Code string

	// Message is the service-level error message, when the payload carries one.
	Message string

	// Err is the underlying SDK error, if any.
	Err error
}

func (e *StatusError) Error() string {
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("%s returned HTTP %d (%s): %s", e.Service, e.StatusCode, e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s returned HTTP %d: %s", e.Service, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s returned HTTP %d: %v", e.Service, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s returned HTTP %d", e.Service, e.StatusCode)
	}
}

func (e *StatusError) Unwrap() error { return e.Err }

// ErrorKind is the failure category of an outbound call.
type ErrorKind string

const (
	KindNone      ErrorKind = ""
	KindTransport ErrorKind = "transport"
	KindUpstream  ErrorKind = "upstream"
	KindMalformed ErrorKind = "malformed"
)

// Classify sorts err into the transport / upstream / malformed taxonomy.
// Anything that is neither a StatusError nor a decode failure is treated as
// a transport failure (connection errors, timeouts, cancellation).
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var se *StatusError
	if errors.As(err, &se) {
		return KindUpstream
	}
	if errors.Is(err, ErrMalformed) {
		return KindMalformed
	}
	return KindTransport
}

// IsTimeout reports whether err stems from a deadline or client timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// NewClient returns an http.Client for cfg. A zero timeout keeps the
// net/http default of no timeout.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// CheckResponse returns a *StatusError when resp is not 2xx. The body is
// inspected for a service error payload; it is left unread on success.
func CheckResponse(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	code, msg := parseErrorBody(body)
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Code:       code,
		Message:    msg,
	}
}

// GetJSON issues a GET request to reqURL and decodes a 2xx JSON body into v.
func GetJSON(ctx context.Context, client *http.Client, service, reqURL, userAgent string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", service, err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(service, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: parsing %s response: %v", ErrMalformed, service, err)
	}
	return nil
}

// errorPayload covers the two shapes seen in practice:
// {"status":"error","code":"...","message":"..."} and
// {"error":{"code":"...","message":"..."}}.
type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   *struct {
		Code    any    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseErrorBody(body []byte) (code, msg string) {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err == nil {
		if p.Message != "" {
			return p.Code, p.Message
		}
		if p.Error != nil && p.Error.Message != "" {
			if c, ok := p.Error.Code.(string); ok {
				code = c
			}
			return code, p.Error.Message
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:197] + "..."
	}
	return "", text
}
