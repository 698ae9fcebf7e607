package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/yourusername/jarvis-assistant/config"
	"github.com/yourusername/jarvis-assistant/display"
	"github.com/yourusername/jarvis-assistant/internal/activity"
	"github.com/yourusername/jarvis-assistant/internal/intent"
	"github.com/yourusername/jarvis-assistant/internal/llm"
	"github.com/yourusername/jarvis-assistant/internal/logger"
	"github.com/yourusername/jarvis-assistant/internal/metrics"
	"github.com/yourusername/jarvis-assistant/internal/orchestrator"
	"github.com/yourusername/jarvis-assistant/internal/reasoning"
	"github.com/yourusername/jarvis-assistant/internal/tools"
	"github.com/yourusername/jarvis-assistant/storage"
)

var version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	fmt.Printf("🤖 %s v%s\n", cfg.App.Name, version)

	registry := tools.NewRegistry()
	tools.RegisterDefaults(registry)

	classifier := buildClassifier(cfg, log)

	store, err := storage.NewUsageStore(cfg.Database.Path)
	if err != nil {
		log.Warn("Usage history disabled", zap.Error(err))
	} else {
		defer store.Close()
	}

	sink := activity.NewConsoleSink()
	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	orch := orchestrator.New(registry, classifier, log.Named("orchestrator"))
	orch.SetActivitySink(sink)
	recorders := orchestrator.MultiRecorder{collector}
	if store != nil {
		recorders = append(recorders, store)
	}
	orch.SetUsageRecorder(recorders)

	factory := func(_ context.Context) (llm.Agent, error) {
		return llm.NewOpenAIAgent(llm.OpenAIConfig{
			APIKey:            cfg.AI.APIKey,
			Model:             cfg.AI.Model,
			MaxTokens:         cfg.AI.MaxTokens,
			Temperature:       float32(cfg.AI.Temperature),
			RequestsPerMinute: cfg.AI.RequestsPerMinute,
		}, log.Named("llm"))
	}

	dispatcher := reasoning.NewDispatcher(orch, registry, factory, log.Named("dispatcher"))
	dispatcher.SetActivitySink(sink)
	dispatcher.SetCollector(collector)
	dispatcher.UpdateConfig(cfg.DispatcherUpdates())

	// Config file edits apply without a restart
	config.Watch(dispatcher.UpdateConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalCh
		fmt.Println("\n👋 Shutting down...")
		cancel()
	}()

	showWelcome()
	runInteractiveCLI(ctx, dispatcher, registry, store)
}

func buildClassifier(cfg *config.Config, log *zap.Logger) intent.Classifier {
	if !cfg.Semantic.Enabled {
		return intent.NewLexicalClassifier()
	}

	semantic, err := intent.NewSemanticClassifier(intent.SemanticConfig{
		Host:       cfg.Semantic.Host,
		Port:       cfg.Semantic.Port,
		Collection: cfg.Semantic.Collection,
		APIKey:     cfg.AI.APIKey,
		Model:      openai.EmbeddingModel(cfg.Semantic.Model),
		Dimension:  uint64(cfg.Semantic.Dimension),
	}, log.Named("intent"))
	if err != nil {
		log.Warn("Semantic classifier unavailable, using lexical matching", zap.Error(err))
		return intent.NewLexicalClassifier()
	}
	if err := semantic.Index(context.Background()); err != nil {
		semantic.Close()
		log.Warn("Exemplar indexing failed, using lexical matching", zap.Error(err))
		return intent.NewLexicalClassifier()
	}
	log.Info("Using semantic intent classifier")
	return semantic
}

func runInteractiveCLI(ctx context.Context, dispatcher *reasoning.Dispatcher, registry *tools.Registry, store *storage.UsageStore) {
	promptColor := color.New(color.FgCyan, color.Bold)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		promptColor.Print("jarvis> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("👋 Goodbye!")
			return
		case "help", "h":
			showHelp()
			continue
		case "tools":
			showTools(registry)
			continue
		case "metrics":
			showMetrics(dispatcher)
			continue
		case "history":
			showHistory(store)
			continue
		}

		processQuery(ctx, dispatcher, store, input)
	}
}

func processQuery(ctx context.Context, dispatcher *reasoning.Dispatcher, store *storage.UsageStore, input string) {
	spinner := display.NewThinkingSpinner()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				_ = spinner.Add(1)
			}
		}
	}()

	resp := dispatcher.Dispatch(ctx, input)
	close(done)
	_ = spinner.Finish()

	if store != nil {
		_ = store.RecordDispatch(input, resp.Success, resp.Method, resp.ErrorCode, resp.ExecutionTime)
	}

	if resp.Success {
		color.Green("\n%s", resp.Response)
		color.HiBlack("(%s, %.2fs)\n", resp.Method, resp.ExecutionTime)
	} else {
		color.Red("\n❌ %s [%s]\n", resp.Error, resp.ErrorCode)
	}
}

func showWelcome() {
	fmt.Println("Type a request, or one of: help, tools, metrics, history, quit")
	fmt.Println()
}

func showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  help     - show this help")
	fmt.Println("  tools    - list registered tools")
	fmt.Println("  metrics  - show dispatch metrics")
	fmt.Println("  history  - show recent tool usage")
	fmt.Println("  quit     - exit")
	fmt.Println()
	fmt.Println("Anything else is dispatched as a query.")
}

func showTools(registry *tools.Registry) {
	for _, meta := range registry.All() {
		fmt.Printf("  %-24s %-18s p%-2d  %s\n", meta.Name, meta.Category, meta.Priority, meta.Description)
	}
}

func showMetrics(dispatcher *reasoning.Dispatcher) {
	snapshot := dispatcher.GetMetrics()
	fmt.Printf("  Total queries:     %d\n", snapshot.TotalQueries)
	fmt.Printf("  Successful:        %d (%.1f%%)\n", snapshot.SuccessfulQueries, snapshot.SuccessRate)
	fmt.Printf("  Orchestrator path: %d\n", snapshot.OrchestratorQueries)
	fmt.Printf("  Fallback path:     %d\n", snapshot.FallbackQueries)
	fmt.Printf("  Errors:            %d\n", snapshot.ErrorCount)
	if snapshot.LastError != "" {
		fmt.Printf("  Last error:        %s\n", snapshot.LastError)
	}
	fmt.Printf("  Avg response time: %.2fs\n", snapshot.AverageResponseTime)
}

func showHistory(store *storage.UsageStore) {
	if store == nil {
		fmt.Println("  Usage history is disabled.")
		return
	}
	usages, err := store.RecentToolUsage(10)
	if err != nil {
		fmt.Printf("  Failed to load history: %v\n", err)
		return
	}
	if len(usages) == 0 {
		fmt.Println("  No tool usage recorded yet.")
		return
	}
	for _, u := range usages {
		status := "✅"
		if !u.Success {
			status = "❌"
		}
		fmt.Printf("  %s %-24s %6dms  %s\n", status, u.Tool, u.Duration.Milliseconds(), truncate(u.Query, 40))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
