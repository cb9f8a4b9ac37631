package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/MPASTEAU/harmonizer/chat"
	"github.com/MPASTEAU/harmonizer/config"
	"github.com/MPASTEAU/harmonizer/llm/providers/openai_compat"
)

func main() {
	settings, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if settings.APIKey == "" {
		log.Fatal("HARMONIZER_API_KEY environment variable is required")
	}

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	provider, err := openai_compat.New(settings.APIKey, openai_compat.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	opts := []chat.Option{chat.WithLogger(logger)}
	if settings.Model != "" {
		opts = append(opts, chat.WithModel(settings.Model))
	}
	conv := chat.New(provider, opts...)

	if err := conv.AddMessage("user", "Bonjour, comment vas-tu ?"); err != nil {
		log.Fatal(err)
	}

	reply, err := conv.Chat(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(reply)
}
