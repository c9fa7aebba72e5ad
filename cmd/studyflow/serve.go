package main

import (
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/studyflow/internal/httpapi"
	"github.com/nguyentantai21042004/studyflow/internal/metrics"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload form API, downloads and metrics over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			a, err := newApp(ctx, root, metrics.NewPrometheus(registry))
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			req, err := a.cfg.DefaultRequest()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			srv := httpapi.New(httpapi.Options{
				Addr:           addr,
				MaxUploadBytes: a.cfg.Server.MaxUploadBytes,
				DefaultRequest: req,
			}, httpapi.Deps{
				Processor:  a.processor,
				History:    a.history,
				Exporter:   a.exporter,
				Summarizer: a.summarizer,
				Voice:      a.voice,
				Gatherer:   registry,
			}, a.log)
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")
	return cmd
}
