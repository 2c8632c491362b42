package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/term"

	"hragent/pkg/agent"
	"hragent/pkg/config"
	"hragent/pkg/darwinbox"
	"hragent/pkg/session"
	"hragent/pkg/tooling"
)

func GetEnv(name, fallback string) string {
	value, ok := os.LookupEnv(name)
	if ok {
		return value
	}
	return fallback
}

func main() {
	apiURL := flag.String("api", GetEnv("OPENAI_URL", "https://api.openai.com/v1"), "URL for the OpenAI-compatible API endpoint")
	model := flag.String("model", GetEnv("OPENAI_MODEL", "gpt-4o"), "Technical name of the LLM")
	userMessage := flag.String("message", "", "Run a single turn with this user message and exit")
	systemMessage := flag.String("system", "", "Override the built-in system prompt")
	sessionFile := flag.String("session-file", "", "Use this file to save and resume chat sessions")
	activeLog := flag.Bool("log", false, "Activate debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *activeLog {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Missing credentials are a startup failure, never a runtime surprise.
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "darwinbox", cfg)

	options := []option.RequestOption{
		option.WithBaseURL(*apiURL),
	}
	if apiKey := GetEnv("OPENAI_API_KEY", ""); apiKey != "" {
		options = append(options, option.WithAPIKey(apiKey))
	}
	if *activeLog {
		options = append(options, option.WithDebugLog(nil))
	}
	client := openai.NewClient(options...)

	registry := tooling.NewRegistry(darwinbox.New(cfg))

	var resumed *openai.ChatCompletionNewParams
	var sessionID string
	if *sessionFile != "" {
		sessionID, resumed, err = session.Resume(*sessionFile)
		if err != nil {
			slog.Error("session resume failed", "error", err)
			os.Exit(1)
		}
	}

	systemPrompt := *systemMessage
	if systemPrompt == "" {
		systemPrompt = agent.SystemPrompt(time.Now())
	}
	hrAgent := agent.New(client, registry, *model, systemPrompt, resumed, sessionID)

	t := term.NewTerminal(os.Stdin, "> ")
	if len(*userMessage) == 0 {
		fmt.Fprintln(t, agent.Greeting)
	}

	for {
		prompt := *userMessage
		if len(*userMessage) == 0 {
			fd := int(os.Stdin.Fd())
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}

			width, height, err := term.GetSize(fd)
			if err != nil {
				fmt.Fprintln(t, "Fatal:", err)
				break
			}
			t.SetSize(width, height)

			prompt, err = t.ReadLine()
			restoreErr := term.Restore(fd, oldState)

			if err != nil {
				if err != io.EOF {
					fmt.Fprintln(t, "Fatal:", err)
				}
				break
			}
			if restoreErr != nil {
				fmt.Fprintln(t, "Fatal:", restoreErr)
				break
			}
		}

		if prompt == "" {
			continue
		}

		answer := runTurn(hrAgent, prompt)
		fmt.Fprintln(t, answer)

		if *sessionFile != "" {
			if err := session.Save(*sessionFile, hrAgent.ID(), hrAgent.Params()); err != nil {
				slog.Error("session save failed", "error", err)
				os.Exit(1)
			}
		}

		if len(*userMessage) > 0 {
			break
		}
	}
}

// runTurn scopes signal handling to the in-flight turn: Ctrl-C abandons the
// current model/tool calls without killing the session.
func runTurn(hrAgent *agent.Agent, prompt string) string {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return hrAgent.Turn(ctx, prompt)
}
