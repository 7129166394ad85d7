package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pix_checkout/internal/app"
	"pix_checkout/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cron",
		Short:        "Runs the payment sync and recovery email jobs once",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Minute, "Maximum run time")

	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(recoveryEmailsCmd())
	rootCmd.AddCommand(allCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Import new transactions from the payment gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) (any, error) {
				return c.Jobs.RunSync(ctx)
			})
		},
	}
}

func recoveryEmailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recovery-emails",
		Short: "Send recovery emails for abandoned PIX payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) (any, error) {
				return c.Jobs.RunRecoveryEmails(ctx)
			})
		},
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run sync then recovery emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, func(ctx context.Context, c *app.Container) (any, error) {
				return c.Jobs.RunAll(ctx)
			})
		},
	}
}

func withContainer(cmd *cobra.Command, run func(context.Context, *app.Container) (any, error)) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	report, err := run(ctx, app.NewContainer(config.Load()))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(report); encErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "encode report: %v\n", encErr)
	}
	return err
}
