package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

const serveIndexHTML = `<!DOCTYPE html>
<html>
<head><title>Tor Relay World Map</title></head>
<body style="margin:0;background:#0c1a2e">
<img src="/map.svg" alt="Tor relay world map" style="width:100%;height:auto">
</body>
</html>
`

func newServeCmd(configPath *string) *cobra.Command {
	var (
		opts mapOpts
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Render the map once and serve it over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			opts.applyConfig(cfg)
			return runServe(cmd.Context(), &opts, addr)
		},
	}

	addMapFlags(cmd, &opts)
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	return cmd
}

func runServe(ctx context.Context, opts *mapOpts, addr string) error {
	logger := loggerFromContext(ctx)

	svg, err := buildMap(ctx, opts)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(serveIndexHTML))
	})
	r.Get("/map.svg", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Write(svg)
	})

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving map on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
