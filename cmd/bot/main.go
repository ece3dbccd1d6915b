package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/pollbot/internal/adapters/handler/discord"
	ops "github.com/vncsmyrnk/pollbot/internal/adapters/handler/http"
	"github.com/vncsmyrnk/pollbot/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/pollbot/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	var cfg discord.Config
	var httpAddr string
	flag.StringVar(&cfg.Token, "token", os.Getenv("DISCORD_TOKEN"), "Discord bot token")
	flag.StringVar(&cfg.ApplicationID, "app-id", os.Getenv("APPLICATION_ID"), "Discord application id")
	flag.StringVar(&cfg.GuildID, "guild-id", os.Getenv("GUILD_ID"), "Guild to register slash commands in")
	flag.StringVar(&httpAddr, "http-addr", envOr("HTTP_ADDR", ":8080"), "Ops HTTP listen address")
	flag.Parse()

	if cfg.Token == "" || cfg.ApplicationID == "" || cfg.GuildID == "" {
		slog.Error("DISCORD_TOKEN, APPLICATION_ID and GUILD_ID are required")
		os.Exit(1)
	}

	logger := slog.Default()

	store := memory.NewPollStore()
	counter := memory.NewCommandCounter()
	pollService := services.NewPollService(store)

	router := discord.NewRouter(counter, logger)
	gateway, err := discord.NewGateway(cfg, router, logger)
	if err != nil {
		slog.Error("failed to build gateway", "error", err)
		os.Exit(1)
	}

	pollHandler := discord.NewPollHandler(pollService, gateway, logger)
	metaHandler := discord.NewMetaHandler(counter)
	router.Handle("poll-new", pollHandler.PollNew)
	router.Handle("poll-results", pollHandler.PollResults)
	router.Handle("poll-close", pollHandler.PollClose)
	router.Handle("poll-delete", pollHandler.PollDelete)
	router.Handle("ping", metaHandler.Ping)
	router.Handle("id", metaHandler.UserID)
	router.Handle("stats", metaHandler.Stats)
	gateway.OnButton(pollHandler.PollButton)

	opsHandler := ops.NewOpsHandler(pollService, counter)
	server := &stdhttp.Server{Addr: httpAddr, Handler: ops.NewHandler(opsHandler)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := gateway.Open(); err != nil {
		slog.Error("failed to open gateway", "error", err)
		os.Exit(1)
	}

	go func() {
		slog.Info("ops server listening", "addr", httpAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("ops server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("ops server shutdown failed", "error", err)
	}
	if err := gateway.Close(); err != nil {
		slog.Error("gateway close failed", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
