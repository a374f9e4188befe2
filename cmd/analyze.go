package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fitscope/fitscope/internal/ai/gemini"
	"github.com/fitscope/fitscope/internal/analysis"
	"github.com/fitscope/fitscope/internal/history"
	"github.com/fitscope/fitscope/internal/logger"
	"github.com/fitscope/fitscope/internal/profile"
	"github.com/fitscope/fitscope/internal/secrets"
	"github.com/fitscope/fitscope/internal/utils"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowReport   = "Show full report"
	PromptReportToFile = "Dump report to file"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptReportToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [jd-file]",
	Short: "Analyze a job description against the profile",
	Long: "Analyze extracts the requirements from a job description with the " +
		"Gemini API and scores them against the professional profile. " +
		"The job description is read from the given file, or from stdin.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("focus", "f", "", "additional focus areas for the requirement extraction")
	analyzeCmd.Flags().StringP("output", "o", "", "write the JSON report to this file instead of prompting")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without prompting")
}

// analyze is the main interactive command of the cli.
func analyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting fitscope", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	store, err := loadProfile(config)
	if err != nil {
		logger.Fatal("loading the profile", zap.Error(err))
	}

	analyzer, err := newAnalyzer(ctx, config, store, logger)
	if err != nil {
		logger.Fatal(
			"building the analyzer",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	jdText, err := readJobDescription(args)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	focus, _ := cmd.Flags().GetString("focus")

	result, err := analyzer.Analyze(ctx, jdText, focus)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	logger.Info("analysis complete",
		zap.Int("overall_score", result.OverallFit.Score),
		zap.Int("skills_score", result.SkillsAnalysis.OverallScore),
	)
	fmt.Println(result.OverallFit.Summary)

	saveToHistory(config, jdText, result, logger)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := dumpReport(result, output); err != nil {
			logger.Fatal("dumping the report", zap.Error(err))
		}
		logger.Info("report written", zap.String("filename", output))
		return
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		printReport(result)
		return
	}

	for {
		_, action, err := analyzePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result *analysis.Result, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		printReport(result)
		return nil
	case PromptReportToFile:
		filename := fmt.Sprintf("%s-report-%d.json", app, time.Now().Unix())
		if err := dumpReport(result, filename); err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("report written", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func loadProfile(config *Config) (*profile.Store, error) {
	if config.ProfileFile != "" {
		return profile.LoadFile(config.ProfileFile)
	}
	return profile.LoadDefault()
}

func newAnalyzer(ctx context.Context, config *Config, store *profile.Store, logger *zap.Logger) (*analysis.Analyzer, error) {
	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		return nil, err
	}

	return analysis.New(generator, store, logger, analysisOptions(config)), nil
}

func analysisOptions(config *Config) analysis.Options {
	opts := analysis.Options{
		SmallGapYears:    config.Analysis.SmallGapYears,
		StrongFitScore:   config.Analysis.StrongFitScore,
		PossibleFitScore: config.Analysis.PossibleFitScore,
		MaxLogLength:     config.AI.Gemini.MaxLogLength,
	}
	if config.AI.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(config.AI.TimeoutSeconds) * time.Second
	}
	return opts
}

func newGenerator(ctx context.Context, cfg *AIConfig, baseLogger *zap.Logger) (*gemini.Generator, error) {
	apiKey, err := secrets.Load("gemini api key", cfg.Gemini.APIKeyFile, "")
	if err != nil {
		return nil, err
	}

	genLogger := logger.WithCommonFields(baseLogger, "gemini", cfg.Gemini.Model)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}

func readJobDescription(args []string) (string, error) {
	var data []byte
	var err error

	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", args[0], err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
	}

	jdText := utils.StripNonPrintable(string(data))
	if strings.TrimSpace(jdText) == "" {
		return "", errors.New("job description is empty")
	}
	return jdText, nil
}

func saveToHistory(config *Config, jdText string, result *analysis.Result, logger *zap.Logger) {
	if config.HistoryFile == "" {
		return
	}

	store, err := history.Open(config.HistoryFile)
	if err != nil {
		logger.Warn("skipping history", zap.Error(err))
		return
	}
	defer store.Close()

	id, err := store.Save(jdText, result)
	if err != nil {
		logger.Warn("failed to persist analysis", zap.Error(err))
		return
	}
	logger.Debug("analysis persisted", zap.String("entry_id", id))
}

func printReport(result *analysis.Result) {
	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}

func dumpReport(result *analysis.Result, filename string) error {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, pretty, 0o644)
}
