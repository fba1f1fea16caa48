package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/zhouzirui/expert-chat/backend/internal/config"
	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
	"github.com/zhouzirui/expert-chat/backend/internal/service/ai"
	"github.com/zhouzirui/expert-chat/backend/internal/service/chat"
)

var errUsage = errors.New("pass the question with -question")

// completerFactory builds the provider client from the loaded AI config.
type completerFactory func(ctx context.Context, cfg config.AIConfig) (chat.Completer, error)

func newAIService(ctx context.Context, cfg config.AIConfig) (chat.Completer, error) {
	return ai.NewService(ctx, cfg)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] .env not loaded, using process environment: %v", err)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout, newAIService); err != nil {
		log.Printf("ask failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, newCompleter completerFactory) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	label := fs.String("persona", string(persona.VeteranEngineer), "persona label: veteran-engineer or friendly-teacher")
	question := fs.String("question", "", "question to ask")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	completer, err := newCompleter(ctx, cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to initialize AI service: %w", err)
	}

	svc := chat.NewService(ai.NewPromptManager(), persona.NewMemoryStore(persona.Seed()), completer)

	answer, err := svc.Ask(ctx, *label, *question)
	if errors.Is(err, chat.ErrEmptyQuestion) {
		fs.Usage()
		return errUsage
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, answer.Content)
	return err
}
