package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/internal/usecase"
	"movie-review/internal/wire"
	"movie-review/pkg/backend"
	"movie-review/pkg/utils"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile string
	config  *utils.Config
	logger  *zap.Logger
	client  backend.Iface
)

// rootCmd serves the web app when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "movie-review",
	Short: "Web front end for the movie review function",
	Long: heredoc.Doc(`
		movie-review serves the Home, Create and Read screens for movie reviews
		stored behind a remote HTTP function endpoint.

		Configuration comes from the dotenv file named by --env and from the
		process environment, which takes precedence.
	`),
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: syncLogger,
	RunE:               runServe,
	SilenceUsage:       true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the review collection once to verify the backend is reachable",
	Example: heredoc.Doc(`
		$ movie-review check
		$ BACKEND_URL=http://localhost:5001/reviews movie-review check --env prod.env
	`),
	RunE: runCheck,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	config, err = utils.LoadConfig(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}

	client, err = backend.Init(config.Backend)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	return nil
}

func syncLogger(cmd *cobra.Command, args []string) error {
	if logger != nil {
		_ = logger.Sync()
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("backend", client.BaseURL()),
		zap.Int("page_size", config.View.PageSize),
		zap.Bool("strict_validation", config.View.StrictValidation),
	)

	repos := repository.NewRepository(client, config.Session, usecase.NewSessionFactory(config.View), logger)

	app, err := wire.Wiring(repos, config, logger)
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	return WebServer(app.Router, config.App.Port, 10*time.Second, logger)
}

func runCheck(cmd *cobra.Command, args []string) error {
	repo := repository.NewMovieReviewRepository(client, logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	movies, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("backend check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s reachable: %d movie reviews\n", client.BaseURL(), len(movies))
	return nil
}
