package rest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRequestFailed matches every error returned by Executor.Execute.
var ErrRequestFailed = errors.New("request failed")

// NetworkError reports a transport failure before any response arrived.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error        { return e.Err }
func (e *NetworkError) Is(target error) bool { return target == ErrRequestFailed }

// HTTPStatusError reports a response whose status code is not 2xx.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http response status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: http response status %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *HTTPStatusError) Is(target error) bool { return target == ErrRequestFailed }

// Payload sources.
const (
	SourceRequest  = "request"
	SourceResponse = "response"
)

// PayloadParseError reports JSON that could not be decoded, either the
// outgoing POST data or a response body headed for export.
type PayloadParseError struct {
	Source string
	Err    error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("parse %s payload: %v", e.Source, e.Err)
}

func (e *PayloadParseError) Unwrap() error        { return e.Err }
func (e *PayloadParseError) Is(target error) bool { return target == ErrRequestFailed }

// ExportError reports a failure writing the output file.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error        { return e.Err }
func (e *ExportError) Is(target error) bool { return target == ErrRequestFailed }

const maxSnippet = 512

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > maxSnippet {
		body = body[:maxSnippet]
	}
	return strings.TrimSpace(string(body))
}
