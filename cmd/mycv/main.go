// Package main provides the mycv command: a live résumé server and a static site builder.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/mycv/internal/config"
	"github.com/jonathan/mycv/internal/logging"
	"github.com/jonathan/mycv/internal/rendering"
)

var (
	configFile   string
	logLevel     string
	logFormat    string
	assetsDir    string
	templateFile string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mycv",
	Short: "Multilingual résumé server and static site builder",
	Long: "mycv renders a résumé kept as one TOML file per language (ru, en, th) into HTML, " +
		"either served live or written out as a static site.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to a YAML or TOML config file")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	flags.StringVarP(&assetsDir, "assets", "a", "", "Directory holding resume_{ru,en,th}.toml")
	flags.StringVarP(&templateFile, "template", "t", "", "Path to an HTML template replacing the built-in one")
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		loaded.Log.Format = logFormat
	}
	if flags.Changed("assets") {
		loaded.AssetsDir = assetsDir
	}
	if flags.Changed("template") {
		loaded.Template = templateFile
	}
	applyServeFlags(cmd, loaded)
	applyBuildFlags(cmd, loaded)

	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.Setup(logging.Options{Level: loaded.Log.Level, Format: loaded.Log.Format})
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	return nil
}

// newRenderer builds the HTML renderer described by the configuration.
func newRenderer(c *config.Config) (*rendering.HTMLRenderer, error) {
	opts := []rendering.Option{rendering.WithBaseURL(c.Build.BaseURL)}
	if c.Template != "" {
		return rendering.NewHTMLRendererFromFile(c.Template, opts...)
	}
	return rendering.NewHTMLRenderer(opts...)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
