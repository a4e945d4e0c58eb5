package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephgoksu/CrewWing/internal/analyze"
	"github.com/josephgoksu/CrewWing/internal/extract"
	"github.com/josephgoksu/CrewWing/internal/llm"
	"github.com/josephgoksu/CrewWing/internal/roster"
	"github.com/josephgoksu/CrewWing/internal/ui"
	"github.com/josephgoksu/CrewWing/models"
)

var (
	parseUseLLM     bool
	parseRosterPath string
	parseJSON       bool
	parseAsEmail    bool
	parseEmailFrom  string
	parseEmailSubj  string
	parseFromClient bool
	parseNoEnhance  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Extract tasks from a message or email",
	Long: `Parse extracts draft tasks from a free-text message, then enhances them
with context analysis: urgency, assignee, deadline, project, and dependency
clues. With --llm the extraction is delegated to the configured language
model, falling back to the deterministic extractor on any failure.

The message is read from the argument, or from stdin when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseUseLLM, "llm", false, "delegate extraction to the configured language model")
	parseCmd.Flags().StringVar(&parseRosterPath, "roster", "", "roster file (JSON or YAML) for context-aware analysis")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "emit the result as JSON")
	parseCmd.Flags().BoolVar(&parseAsEmail, "email", false, "treat the input as email body")
	parseCmd.Flags().StringVar(&parseEmailFrom, "from", "", "email sender address (with --email)")
	parseCmd.Flags().StringVar(&parseEmailSubj, "subject", "", "email subject (with --email)")
	parseCmd.Flags().BoolVar(&parseFromClient, "client", false, "mark the email as client-originated (with --email)")
	parseCmd.Flags().BoolVar(&parseNoEnhance, "no-enhance", false, "skip context enhancement of extracted tasks")
}

func runParse(cmd *cobra.Command, args []string) error {
	message, err := readMessage(args)
	if err != nil {
		return err
	}

	ros, err := loadRoster(parseRosterPath)
	if err != nil {
		PrintError("Failed to load roster file.", err)
		return err
	}
	ref := ros.ReferenceData()

	extractor := extract.NewExtractor()

	var result models.ParseResult
	switch {
	case parseAsEmail:
		if parseEmailFrom == "" {
			return fmt.Errorf("--email requires --from")
		}
		result = extractor.ExtractFromEmail(message, extract.EmailMetadata{
			From:     parseEmailFrom,
			Subject:  parseEmailSubj,
			Date:     time.Now(),
			IsClient: parseFromClient,
		})
	case parseUseLLM:
		result = extractWithLLM(cmd.Context(), extractor, message, ref)
	default:
		result = extractor.ExtractTasks(message)
	}

	if !parseNoEnhance && len(result.Tasks) > 0 {
		clues := analyze.NewAnalyzer().AnalyzeContext(message, ref)
		for i, task := range result.Tasks {
			result.Tasks[i] = analyze.EnhanceTask(task, clues)
		}
	}

	if parseJSON {
		return printJSON(result)
	}
	fmt.Print(ui.RenderParseResult(result))
	return nil
}

// extractWithLLM builds the configured chat model and runs the delegated
// extraction. Model construction failures degrade to the deterministic path,
// matching the fallback behavior of the extraction call itself.
func extractWithLLM(ctx context.Context, fallback *extract.Extractor, message string, ref *models.ReferenceData) models.ParseResult {
	cfg := GetConfig()

	timeout := time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatModel, err := llm.NewChatModel(ctx, llm.Config{
		Provider: llm.Provider(cfg.LLM.Provider),
		Model:    cfg.LLM.ModelName,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		LogError("chat model unavailable, using pattern extraction", err)
		return fallback.ExtractTasks(message)
	}

	extractor, err := extract.NewLLMExtractor(chatModel, fallback, cfg.Project.TemplatesDir)
	if err != nil {
		LogError("LLM extractor setup failed, using pattern extraction", err)
		return fallback.ExtractTasks(message)
	}
	return extractor.ExtractTasks(ctx, message, ref)
}

// readMessage takes the message from the argument or, when absent, stdin.
func readMessage(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("no message argument and stdin unavailable: %w", err)
	}
	message := strings.TrimSpace(string(data))
	if message == "" {
		return "", fmt.Errorf("empty message")
	}
	return message, nil
}

// loadRoster resolves the roster path from the flag or the config file.
// An empty path is not an error; analysis simply runs without references.
func loadRoster(flagPath string) (*roster.Roster, error) {
	path := flagPath
	if path == "" {
		path = GetConfig().Project.RosterFile
	}
	if path == "" {
		return nil, nil
	}
	return roster.Load(path)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
