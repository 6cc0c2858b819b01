package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Adda-Baaj/cielo/internal/export"
	"github.com/Adda-Baaj/cielo/internal/logger"
	"github.com/Adda-Baaj/cielo/internal/payload"
	"github.com/Adda-Baaj/cielo/pkg/httpclient"
)

// ErrEmptyData is returned for a POST without a body.
var ErrEmptyData = errors.New("post requires json data")

// Request describes a single call against the base URL.
type Request struct {
	Method   string
	Endpoint string
	// Body is the raw JSON text sent with POST. Ignored for GET.
	Body string
	// Output is the optional export path. Empty prints the body.
	Output string
}

// Executor performs one request and routes the response body to stdout or a file.
type Executor struct {
	baseURL   string
	client    httpclient.Client
	exporters export.Registry
	stdout    io.Writer
	log       logger.Logger
}

// NewExecutor builds an executor. A nil registry uses export.DefaultRegistry
// and a nil logger discards output.
func NewExecutor(baseURL string, client httpclient.Client, exporters export.Registry, stdout io.Writer, log logger.Logger) (*Executor, error) {
	if client == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	if stdout == nil {
		return nil, fmt.Errorf("stdout writer must not be nil")
	}
	if exporters == nil {
		exporters = export.DefaultRegistry()
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Executor{
		baseURL:   baseURL,
		client:    client,
		exporters: exporters,
		stdout:    stdout,
		log:       log,
	}, nil
}

// Execute sends req and delivers the body. Every returned error matches
// ErrRequestFailed.
func (e *Executor) Execute(ctx context.Context, req Request) error {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	url := e.baseURL + req.Endpoint
	e.log.InfoObj("requesting", "request", map[string]any{
		"method": method,
		"url":    url,
	})

	resp, err := e.send(ctx, method, url, req.Body)
	if err != nil {
		return err
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		return &HTTPStatusError{URL: url, StatusCode: status, Body: readBodySnippet(resp.Body())}
	}
	e.log.InfoObj("response received", "status_code", status)

	return e.deliver(resp.Body(), req.Output)
}

func (e *Executor) send(ctx context.Context, method, url, data string) (httpclient.Response, error) {
	switch method {
	case http.MethodGet:
		resp, err := e.client.Get(ctx, url, nil)
		if err != nil {
			return nil, &NetworkError{URL: url, Err: err}
		}
		return resp, nil
	case http.MethodPost:
		body, err := encodeData(data)
		if err != nil {
			return nil, &PayloadParseError{Source: SourceRequest, Err: err}
		}
		headers := map[string]string{"Content-Type": "application/json"}
		resp, err := e.client.Do(ctx, method, url, headers, body)
		if err != nil {
			return nil, &NetworkError{URL: url, Err: err}
		}
		return resp, nil
	default:
		return nil, fmt.Errorf("%w: unsupported method %q", ErrRequestFailed, method)
	}
}

// encodeData validates the POST data as JSON and re-encodes it compactly.
func encodeData(data string) ([]byte, error) {
	if strings.TrimSpace(data) == "" {
		return nil, ErrEmptyData
	}
	v, err := payload.DecodeString(data)
	if err != nil {
		return nil, err
	}
	return payload.Marshal(v)
}

func (e *Executor) deliver(body []byte, output string) error {
	format := export.FormatFor(output)
	if format == export.FormatRaw {
		if output != "" {
			e.log.WarnObj("unrecognized output extension; printing body", "output", output)
		}
		if _, err := e.stdout.Write(body); err != nil {
			return &ExportError{Path: "stdout", Err: err}
		}
		return nil
	}

	v, err := payload.Decode(body)
	if err != nil {
		return &PayloadParseError{Source: SourceResponse, Err: err}
	}
	if err := export.WriteFile(e.exporters, format, v, output); err != nil {
		return &ExportError{Path: output, Err: err}
	}
	e.log.InfoObj("response exported", "export", map[string]any{
		"path":   output,
		"format": format.String(),
	})
	return nil
}
