package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"ClotureBot/config"
	"ClotureBot/handler"
	"ClotureBot/repo"
	"ClotureBot/wizard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := setupLogger(cfg, os.Stderr); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	leads, err := repo.Open(ctx, repo.Settings{
		ServiceAccountKeyPath: cfg.Firebase.ServiceAccountKeyPath,
		DatabaseURL:           cfg.Firebase.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("error initializing lead archive: %w", err)
	}
	defer leads.Close()
	if _, ok := leads.(repo.NopLeadStore); ok {
		log.Warn().Msg("firebase not configured, leads will not be archived")
	}

	h := handler.NewEstimateBotHandler(leads, wizard.Recipient{
		Host:  cfg.WhatsAppHost,
		Phone: cfg.WhatsAppPhone,
	})

	opts := []bot.Option{
		bot.WithDefaultHandler(h.Handler),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return fmt.Errorf("error creating bot: %w", err)
	}

	log.Info().Str("recipient", cfg.WhatsAppPhone).Msg("bot started")
	b.Start(ctx)
	log.Info().Int("sessions", h.Sessions.Len()).Msg("bot stopped")
	return nil
}

// setupLogger configures the global zerolog logger from cfg.
func setupLogger(cfg *config.Config, w io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	switch cfg.LogFormat {
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	case "console", "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log_format %q", cfg.LogFormat)
	}
	return nil
}
