package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/mycv/internal/config"
	"github.com/jonathan/mycv/internal/pdf"
	"github.com/jonathan/mycv/internal/repository"
	"github.com/jonathan/mycv/internal/site"
)

var (
	buildOutDir      string
	buildDefaultLang string
	buildBaseURL     string
	buildFresh       bool
	buildText        bool
	buildPDF         bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the static site",
	Long: "Render every language to {out}/{lang}/index.html and copy the default language " +
		"to {out}/index.html. Optionally also write resume.txt and resume.pdf per language.",
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "", "Output directory (default docs)")
	buildCmd.Flags().StringVarP(&buildDefaultLang, "default-lang", "l", "", "Language copied to the output root (default en)")
	buildCmd.Flags().StringVar(&buildBaseURL, "base-url", "", "Prefix of language switcher links (default /)")
	buildCmd.Flags().BoolVar(&buildFresh, "fresh", false, "Reread data files instead of using the startup cache")
	buildCmd.Flags().BoolVar(&buildText, "text", false, "Also write a plain-text resume.txt per language")
	buildCmd.Flags().BoolVar(&buildPDF, "pdf", false, "Also print resume.pdf per language with headless Chrome")
	rootCmd.AddCommand(buildCmd)
}

func applyBuildFlags(cmd *cobra.Command, c *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("out") {
		c.Build.OutputDir = buildOutDir
	}
	if changed("default-lang") {
		c.Build.DefaultLanguage = buildDefaultLang
	}
	if changed("base-url") {
		c.Build.BaseURL = buildBaseURL
	}
	if changed("fresh") {
		c.Build.Fresh = buildFresh
	}
	if changed("text") {
		c.Build.Text = buildText
	}
	if changed("pdf") {
		c.Build.PDF = buildPDF
	}
}

func runBuild(cmd *cobra.Command, _ []string) error {
	repo, err := repository.New(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	builder := &site.Builder{
		Repo:            repo,
		Renderer:        renderer,
		OutputDir:       cfg.Build.OutputDir,
		DefaultLanguage: cfg.DefaultLanguage(),
		Fresh:           cfg.Build.Fresh,
		TextCopy:        cfg.Build.Text,
		Logger:          logger,
	}
	if cfg.Build.PDF {
		printer := pdf.NewChromePrinter()
		if !printer.Available() {
			return fmt.Errorf("--pdf requires Chrome; install it or set %s", pdf.ChromePathEnv)
		}
		builder.Printer = printer
	}

	result, err := builder.Build(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated in %s (%d files)\n", cfg.Build.OutputDir, len(result.Files))
	return nil
}
