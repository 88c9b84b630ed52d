// Package pdf prints rendered résumés to PDF with headless Chrome.
package pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromePathEnv overrides the Chrome executable.
const ChromePathEnv = "CHROME_PATH"

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// ChromePrinter renders an HTML document in a fresh headless browser per call.
type ChromePrinter struct {
	execPath string
	timeout  time.Duration
}

// Option configures a ChromePrinter.
type Option func(*ChromePrinter)

// WithExecPath sets the browser executable, taking precedence over CHROME_PATH.
func WithExecPath(path string) Option {
	return func(p *ChromePrinter) { p.execPath = path }
}

// WithTimeout bounds a single PrintHTML call, browser start-up included.
func WithTimeout(d time.Duration) Option {
	return func(p *ChromePrinter) { p.timeout = d }
}

// NewChromePrinter returns a printer using CHROME_PATH when set.
func NewChromePrinter(opts ...Option) *ChromePrinter {
	p := &ChromePrinter{
		execPath: os.Getenv(ChromePathEnv),
		timeout:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Available reports whether a Chrome executable can be found.
func (p *ChromePrinter) Available() bool {
	if p.execPath != "" {
		_, err := os.Stat(p.execPath)
		return err == nil
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func (p *ChromePrinter) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}
	return opts
}

// PrintHTML loads html from a temporary file and prints it as an A4 PDF with
// backgrounds.
func (p *ChromePrinter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "mycv-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write HTML: %w", err)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, p.allocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.timeout)
	defer cancel()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser PDF rendering failed: %w", err)
	}

	return buf, nil
}
