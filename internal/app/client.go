package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Adda-Baaj/cielo/internal/config"
	"github.com/Adda-Baaj/cielo/internal/export"
	"github.com/Adda-Baaj/cielo/internal/logger"
	"github.com/Adda-Baaj/cielo/internal/rest"
	"github.com/Adda-Baaj/cielo/pkg/httpclient"
)

// Client wires config, transport and exporters into a rest.Executor.
type Client struct {
	cfg  *config.Config
	exec *rest.Executor
	log  logger.Logger
}

// NewClient builds a resty-backed client that prints bodies to stdout.
func NewClient(cfg *config.Config, log logger.Logger, stdout io.Writer) (*Client, error) {
	return NewClientWith(cfg, log, stdout, httpclient.NewRestyClient())
}

// NewClientWith is NewClient with an explicit transport.
func NewClientWith(cfg *config.Config, log logger.Logger, stdout io.Writer, hc httpclient.Client) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	exec, err := rest.NewExecutor(cfg.BaseURL, hc, export.DefaultRegistry(), stdout, log)
	if err != nil {
		return nil, fmt.Errorf("build executor: %w", err)
	}
	log.DebugObj("client ready", "client", map[string]any{
		"base_url": cfg.BaseURL,
	})

	return &Client{cfg: cfg, exec: exec, log: log}, nil
}

// Get fetches endpoint and prints or exports the body.
func (c *Client) Get(ctx context.Context, endpoint, output string) error {
	return c.exec.Execute(ctx, rest.Request{
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Output:   output,
	})
}

// Post sends data as JSON to endpoint and prints or exports the body.
func (c *Client) Post(ctx context.Context, endpoint, output, data string) error {
	return c.exec.Execute(ctx, rest.Request{
		Method:   http.MethodPost,
		Endpoint: endpoint,
		Body:     data,
		Output:   output,
	})
}
