package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourusername/craftchat/internal/client/ui"
	"github.com/yourusername/craftchat/internal/config"
	"github.com/yourusername/craftchat/internal/conversation"
	"github.com/yourusername/craftchat/internal/logging"
	"github.com/yourusername/craftchat/internal/responder"
	"go.uber.org/zap"
)

var version = "dev"

// programRunner runs a bubbletea model; tests swap it out
type programRunner func(model tea.Model) error

func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(runProgram)
}

func newRootCmdWith(run programRunner) *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "craftchat",
		Short: "Terminal chat front end for a Minecraft assistant",
		Long: `craftchat opens a chat view in the terminal: message history above,
a multi-line input box below.

Enter sends, Alt+Enter (or Ctrl+J) inserts a newline, Tab focuses the
send button, Esc quits. Nothing is saved when the program exits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), cfg, run)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default $HOME/.craftchat.yaml)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("responder", config.ResponderNone, "reply source: none, gemini or remote")
	flags.String("remote-url", "ws://localhost:8080/ws", "answer service websocket URL")
	flags.String("model", "gemini-2.5-flash", "Gemini model name")
	flags.Duration("reply-timeout", 0, "how long to wait for a reply (default from config, 60s)")

	bindFlags(v, cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "craftchat", version)
		},
	})

	return cmd
}

// bindFlags maps command-line flags onto config keys
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	keys := map[string]string{
		"log-file":      "log.file",
		"log-level":     "log.level",
		"responder":     "responder.kind",
		"remote-url":    "remote.url",
		"model":         "gemini.model",
		"reply-timeout": "responder.timeout",
	}
	for flag, key := range keys {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

// runChat is the composition root: it builds the logger, the conversation,
// the optional responder and the view once, then hands the view to the runner.
func runChat(ctx context.Context, cfg *config.Config, run programRunner) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r, closeResponder, err := responder.FromConfig(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("set up responder: %w", err)
	}
	defer closeResponder()

	store := conversation.NewStore()
	opts := []ui.Option{ui.WithLogger(logger)}
	if r != nil {
		opts = append(opts, ui.WithResponder(r, cfg.Responder.Timeout, cfg.Responder.HistoryTurns))
	}

	logger.Info("starting chat", zap.String("responder", cfg.Responder.Kind))
	if err := run(ui.New(store, opts...)); err != nil {
		return fmt.Errorf("run chat view: %w", err)
	}
	logger.Info("chat closed", zap.Int("messages", store.Len()))
	return nil
}
