package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogomes/farol/internal/config"
	"github.com/ogomes/farol/internal/notify"
	"github.com/ogomes/farol/internal/notify/discord"
	"github.com/ogomes/farol/internal/notify/slack"
	"github.com/ogomes/farol/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Farol HTTP API",
		Long:  "Serves the progress-tracking API and, when configured, delivers scheduled progress digests.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	if cfg.Notify.DigestCron != "" {
		adapters, err := buildAdapters(cfg)
		if err != nil {
			return err
		}
		scheduler, err := notify.NewScheduler(gormDB, cfg.Notify.DigestCron, adapters...)
		if err != nil {
			return err
		}
		go scheduler.Run(ctx)
		fmt.Fprintf(cmd.OutOrStdout(), "Digest scheduled: %s\n", cfg.Notify.DigestCron)
	}

	return server.Start(ctx, server.StartOpts{
		DB:   gormDB,
		Port: port,
		Out:  cmd.OutOrStdout(),
	})
}

// buildAdapters creates a notify adapter for every configured platform.
func buildAdapters(cfg *config.Config) ([]notify.Adapter, error) {
	var adapters []notify.Adapter
	if cfg.Notify.Slack.Token != "" {
		adapters = append(adapters, slack.New(cfg.Notify.Slack.Token, cfg.Notify.Slack.Channel))
	}
	if cfg.Notify.Discord.Token != "" {
		a, err := discord.New(cfg.Notify.Discord.Token, cfg.Notify.Discord.Channel)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no notifier configured")
	}
	return adapters, nil
}
