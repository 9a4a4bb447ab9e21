package main

import (
	"context"
	"fmt"

	"github.com/ogomes/farol/internal/notify"
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	var (
		configPath string
		send       bool
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Build the progress digest",
		Long: `Builds the per-sector progress digest and prints it.

With --send, delivers the digest to every configured notifier instead
of waiting for the next scheduled run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, configPath, send)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Farol config file")
	cmd.Flags().BoolVar(&send, "send", false, "deliver the digest to configured notifiers")
	return cmd
}

func runDigest(cmd *cobra.Command, configPath string, send bool) error {
	out := cmd.OutOrStdout()

	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	report := notify.BuildDigest(gormDB)
	if report == nil {
		fmt.Fprintln(out, "No requirements loaded; nothing to report.")
		return nil
	}

	msg := notify.FormatDigest(report)
	fmt.Fprintln(out, msg.Title)
	fmt.Fprintln(out, msg.Body)

	if !send {
		return nil
	}

	adapters, err := buildAdapters(cfg)
	if err != nil {
		return err
	}
	defer func() {
		for _, a := range adapters {
			a.Close()
		}
	}()

	if err := notify.SendDigest(context.Background(), gormDB, adapters...); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nDigest delivered to %d notifier(s).\n", len(adapters))
	return nil
}
