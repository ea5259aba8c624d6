// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meeting-notes CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meeting-notes/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// appLog is built from the log.* settings before any subcommand runs.
var appLog *logger.Logger

// rootCmd is the base command for the meeting-notes CLI.
var rootCmd = &cobra.Command{
	Use:   "meeting-notes",
	Short: "Summarize meeting transcripts into key points and action items",
	Long: `meeting-notes turns a meeting transcript into a short summary. The
transcript is split into chunks, each sentence is classified by keyword as a
key point or an action item, and the merged result is written as Markdown
and/or a paginated PDF.

Settings come from flags, MEETING_NOTES_* environment variables, or a
meeting-notes.yaml config file, in that order of precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Root().PersistentFlags(), map[string]string{
			"log.level": "log-level",
			"log.file":  "log-file",
		}); err != nil {
			return err
		}

		l, err := logger.New(logConfig(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		appLog = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meeting-notes.yaml or ~/.config/meeting-notes/meeting-notes.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file (rotated)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meeting-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meeting-notes"))
		}
	}

	viper.SetEnvPrefix("MEETING_NOTES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// run executes the CLI and closes the log file whether or not the command
// succeeded. Cobra skips post-run hooks on error, so closing happens here.
func run(ctx context.Context) error {
	defer closeLog()
	return rootCmd.ExecuteContext(ctx)
}

func closeLog() {
	if appLog == nil {
		return
	}
	if err := appLog.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "closing log file:", err)
	}
	appLog = nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
