package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlutions-fatec/radarmock/internal/matching"
	"github.com/sqlutions-fatec/radarmock/pkg/cli/internal/output"
	"github.com/sqlutions-fatec/radarmock/pkg/engine"
)

// ErrNoRoute is returned when no enabled mock route matches a request.
var ErrNoRoute = errors.New("no mock route matches")

var (
	requestBody  string
	requestQuery []string
	requestChaos bool
)

var requestCmd = &cobra.Command{
	Use:   "request METHOD PATH",
	Short: "Dispatch one request against a fresh in-process mock",
	Long: `Dispatch one request against a freshly seeded in-process mock and print
the response. No server is started and no latency is applied.

PATH may omit the namespace. Failure injection is off unless --chaos is set.`,
	Example: `  radarmock request GET /radars
  radarmock request GET /registers -q radarId=CAM001 -q type=1 -q limit=10
  radarmock request POST /users --body '{"name":"Ana","email":"ana@example.com","password":"x","level":"admin"}'
  radarmock request PUT /addresses/1 --body @address.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.ChaosEnabled = requestChaos

		body, err := readBody(requestBody)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		var noLatency time.Duration
		st, err := buildStack(cfg, log, stackOptions{latency: &noLatency})
		if err != nil {
			return err
		}

		target, err := withQuery(resolveTarget(cfg.RoutePrefix(), args[1]), requestQuery)
		if err != nil {
			return err
		}
		resp, err := dispatch(cmd.Context(), st.Engine, args[0], target, body)
		if err != nil {
			return err
		}
		return printResponse(cmd.OutOrStdout(), resp, jsonOutput)
	},
}

func init() {
	requestCmd.Flags().StringVarP(&requestBody, "body", "d", "", "Request body; @file reads it from a file")
	requestCmd.Flags().StringArrayVarP(&requestQuery, "query", "q", nil, "Query parameter as key=value (repeatable)")
	requestCmd.Flags().BoolVar(&requestChaos, "chaos", false, "Inject failures at the configured rates")
	rootCmd.AddCommand(requestCmd)
}

// readBody resolves a --body value. A leading @ names a file; @- is stdin.
func readBody(v string) (string, error) {
	name, ok := strings.CutPrefix(v, "@")
	if !ok {
		return v, nil
	}
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}

// resolveTarget mounts target under prefix unless it is already there.
func resolveTarget(prefix, target string) string {
	p, query, hasQuery := strings.Cut(target, "?")
	if prefix != "/" && p != prefix && !strings.HasPrefix(p, prefix+"/") {
		p = matching.Join(prefix, p)
	}
	if hasQuery {
		return p + "?" + query
	}
	return p
}

// withQuery appends key=value pairs to the query string of target.
func withQuery(target string, pairs []string) (string, error) {
	if len(pairs) == 0 {
		return target, nil
	}
	p, raw, _ := strings.Cut(target, "?")
	q, err := url.ParseQuery(raw)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", raw, err)
	}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return "", fmt.Errorf("query %q: expected key=value", pair)
		}
		q.Add(k, v)
	}
	return p + "?" + q.Encode(), nil
}

func dispatch(ctx context.Context, e *engine.Engine, method, target, body string) (*engine.Response, error) {
	resp, ok := e.Dispatch(ctx, engine.NewRequest(method, target, body))
	if !ok {
		return nil, fmt.Errorf("%w %s %s", ErrNoRoute, strings.ToUpper(method), target)
	}
	return resp, nil
}

// requestOutput is the --json form of a dispatched response.
type requestOutput struct {
	Status   int    `json:"status"`
	Route    string `json:"route"`
	Injected bool   `json:"injected"`
	Body     any    `json:"body"`
}

func printResponse(w io.Writer, resp *engine.Response, asJSON bool) error {
	if asJSON {
		return output.JSON(w, requestOutput{
			Status:   resp.Status,
			Route:    resp.Route,
			Injected: resp.Injected,
			Body:     resp.Body,
		})
	}
	line := fmt.Sprintf("%d %s (%s)", resp.Status, http.StatusText(resp.Status), resp.Route)
	if resp.Injected {
		line += " [injected]"
	}
	fmt.Fprintln(w, line)
	if resp.Body == nil {
		return nil
	}
	return output.JSON(w, resp.Body)
}
