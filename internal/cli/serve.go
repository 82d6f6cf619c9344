package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtower/internal/server"
	"github.com/matzehuels/wordtower/pkg/cache"
	"github.com/matzehuels/wordtower/pkg/observability"
	"github.com/matzehuels/wordtower/pkg/pipeline"
)

// serveKeyPrefix separates server cache entries from CLI entries.
const serveKeyPrefix = "serve:"

func (c *CLI) serveCommand() *cobra.Command {
	var (
		settings settingsFlags
		addr     string
		maxBody  int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Routes:
  POST /v1/layout            compute a layout, respond with JSON
  POST /v1/render/{format}   render svg or json
  GET  /healthz              liveness and build information

Layout and selection flags set the defaults for requests that omit them.`,
		Example: `  wordtower serve --addr :8080
  curl -s localhost:8080/v1/render/svg -d '{"text": "the cat and the hat."}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			defaults, err := settings.options(cmd)
			if err != nil {
				return err
			}

			cc, err := newCache(settings.noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, serveKeyPrefix), logger)
			defer runner.Close()

			hooks := observability.NewLogHooks(logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetServerHooks(hooks)
			defer observability.Reset()

			h, err := server.NewHandler(server.HandlerConfig{
				Runner:       runner,
				Defaults:     defaults,
				Logger:       logger,
				MaxBodyBytes: maxBody,
			})
			if err != nil {
				return err
			}
			srv, err := server.New(server.Config{Addr: addr, Handler: h})
			if err != nil {
				return err
			}

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()
			logger.Info("listening", "addr", srv.Addr())

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errc
		},
	}

	settings.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
