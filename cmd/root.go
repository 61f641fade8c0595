package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/myshows-mcp/config"
	"github.com/s0up4200/myshows-mcp/myshows"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *myshows.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata injected by the linker.
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// rootCmd represents the base command. Running it without a subcommand
// starts the MCP server, which is what MCP hosts expect from the binary.
var rootCmd = &cobra.Command{
	Use:   "myshows-mcp",
	Short: "MCP server bridging the myshows.me API to agent tools",
	Long: `myshows-mcp exposes a myshows.me account as MCP tools over stdio:
search the catalog, inspect the watch list, mark episodes watched, and
fetch the calendar and recommendations. Credentials come from a config
file or the MYSHOWS_LOGIN / MYSHOWS_PASSWORD environment variables.`,
	PersistentPreRunE: initializeApp,
	RunE:              runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration, logger and client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create myshows client; login happens lazily on the first tool call.
	client, err = myshows.NewClient(
		cfg.MyShows.Login,
		cfg.MyShows.Password,
		logger,
		myshows.WithAuthURL(cfg.MyShows.AuthURL),
		myshows.WithRPCURL(cfg.MyShows.RPCURL),
	)
	if err != nil {
		return fmt.Errorf("failed to create myshows client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger. Output always goes to stderr
// since stdout carries the MCP protocol.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no color when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to myshows.me",
	Long:  `Log in to myshows.me with the configured credentials and fetch the profile show list.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing connection to myshows.me...")

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Println("✓ Login successful!")

	raw, err := client.GetProfileShows(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile shows: %w", err)
	}

	var shows []json.RawMessage
	if err := json.Unmarshal(raw, &shows); err == nil {
		fmt.Printf("- Shows in profile: %d\n", len(shows))
	}

	return nil
}
