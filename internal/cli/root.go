package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Adda-Baaj/cielo/internal/app"
	"github.com/Adda-Baaj/cielo/internal/config"
	"github.com/Adda-Baaj/cielo/internal/logger"
	"github.com/spf13/cobra"
)

// ErrorMessage is printed to stderr whenever a request cannot complete.
const ErrorMessage = "Something unexpected happened. Closing now..."

var methods = []string{"get", "post"}

type options struct {
	data     string
	output   string
	baseURL  string
	logLevel string
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cielo <get|post> <endpoint>",
		Short: "Send a GET or POST request to a REST API and print or export the response",
		Long: `cielo sends a single request to the configured base URL (default
` + config.DefaultBaseURL + `) and prints the response body.

With --output the body is exported instead: a .json path gets pretty JSON,
.csv gets a header row plus one row per object, and .yaml/.yml gets YAML.
Any other extension prints the body.`,
		Example: `  cielo get /posts/1
  cielo get /posts -o posts.csv
  cielo post /posts -d '{"title":"foo"}' -o created.json`,
		Args:      cobra.MatchAll(cobra.ExactArgs(2), validMethod),
		ValidArgs: methods,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return run(cmd, opts, strings.ToLower(args[0]), args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "JSON data to send with a POST request")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output to a .json, .csv or .yaml file (default: dump to stdout)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Override the API base URL")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func validMethod(_ *cobra.Command, args []string) error {
	m := strings.ToLower(args[0])
	for _, valid := range methods {
		if m == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid method %q (choose from %s)", args[0], strings.Join(methods, ", "))
}

func run(cmd *cobra.Command, opts *options, method, endpoint string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), fmt.Errorf("load config: %w", err))
	}

	if _, err := logger.Init(cfg, cmd.ErrOrStderr()); err != nil {
		return reportFailure(cmd.ErrOrStderr(), fmt.Errorf("init logger: %w", err))
	}
	defer func() { _ = logger.Close() }()
	log := logger.Default()

	client, err := app.NewClient(cfg, log, cmd.OutOrStdout())
	if err != nil {
		log.ErrorObj("failed to initialize client", "error", err.Error())
		return reportFailure(cmd.ErrOrStderr(), err)
	}

	ctx := cmd.Context()
	switch method {
	case "get":
		if opts.data != "" {
			log.DebugObj("ignoring data for get request", "data", opts.data)
		}
		err = client.Get(ctx, endpoint, opts.output)
	case "post":
		err = client.Post(ctx, endpoint, opts.output, opts.data)
	}
	if err != nil {
		log.ErrorObj("request failed", "error", err.Error())
		return reportFailure(cmd.ErrOrStderr(), err)
	}
	return nil
}

func reportFailure(w io.Writer, err error) error {
	fmt.Fprintln(w, ErrorMessage)
	return err
}
