// Package main, directory servisinin giriş noktasıdır.
//
// Komutlar (cobra):
//
//	directory [serve]                 HTTP API'yi başlatır (varsayılan)
//	directory migrate                 sadece migration'ları uygular
//	directory seed --file f.yaml      YAML fixture'ı tek transaction'da yükler
//
// Tüm komutlar global --config bayrağını kabul eder.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd, alt komutlarıyla birlikte root komutu kurar.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "directory",
		Short:         "Community server directory API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")

	serve := newServeCmd(&configFile)
	root.AddCommand(serve, newMigrateCmd(&configFile), newSeedCmd(&configFile))

	// Alt komut verilmezse serve çalışır.
	root.RunE = serve.RunE

	return root
}
