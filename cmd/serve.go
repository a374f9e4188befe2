package cmd

import (
	"context"
	"log"
	"net/http"

	"github.com/fitscope/fitscope/internal/analysis"
	"github.com/fitscope/fitscope/internal/assistant"
	"github.com/fitscope/fitscope/internal/history"
	"github.com/fitscope/fitscope/internal/logger"
	"github.com/fitscope/fitscope/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const defaultListen = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default "+defaultListen+")")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := loadProfile(config)
	if err != nil {
		logger.Fatal("loading the profile", zap.Error(err))
	}

	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal(
			"building the generator",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	analyzer := analysis.New(generator, store, logger, analysisOptions(config))

	asst, err := assistant.New(generator, store, logger)
	if err != nil {
		logger.Fatal("building the assistant", zap.Error(err))
	}

	var hist *history.Store
	if config.HistoryFile != "" {
		hist, err = history.Open(config.HistoryFile)
		if err != nil {
			logger.Fatal("opening the history store", zap.Error(err))
		}
		defer hist.Close()
	}

	listen := config.Listen
	if listen == "" {
		listen = defaultListen
	}

	srv := server.New(analyzer, asst, hist, logger)

	logger.Info("starting the api server",
		zap.String("version", version),
		zap.String("listen", listen),
	)
	if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
		logger.Fatal("api server stopped", zap.Error(err))
	}
}
