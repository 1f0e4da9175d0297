package render

import (
	"context"
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

//go:embed report.css
var defaultStyleCSS string

// PDFRenderer turns a Markdown report into a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, title, markdown string) ([]byte, error)
}

// ChromiumPDFRenderer prints HTML to PDF through a headless Chromium.
type ChromiumPDFRenderer struct {
	webDir     string
	chromePath string
	timeout    time.Duration
	styleOnce  sync.Once
	styleCSS   string
	styleErr   error
}

// NewChromiumPDFRenderer uses webDir/style.css when present, else the
// built-in stylesheet. An empty chromePath probes the usual install paths.
func NewChromiumPDFRenderer(webDir, chromePath string) *ChromiumPDFRenderer {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &ChromiumPDFRenderer{
		webDir:     webDir,
		chromePath: chromePath,
		timeout:    30 * time.Second,
	}
}

func (r *ChromiumPDFRenderer) Render(ctx context.Context, title, markdown string) ([]byte, error) {
	htmlDoc, err := r.BuildHTML(title, markdown)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return pdf, nil
}

// BuildHTML wraps the rendered Markdown in a standalone HTML document.
func (r *ChromiumPDFRenderer) BuildHTML(title, markdown string) (string, error) {
	content, err := MarkdownToHTML(markdown)
	if err != nil {
		return "", err
	}
	styleCSS, err := r.loadStyleCSS()
	if err != nil {
		return "", err
	}
	if title == "" {
		title = "Report"
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" + styleCSS + "</style></head><body>" +
		"<div class='pdf-wrap'><section class='report-html'>" + content + "</section></div>" +
		"</body></html>", nil
}

func (r *ChromiumPDFRenderer) loadStyleCSS() (string, error) {
	r.styleOnce.Do(func() {
		r.styleCSS = defaultStyleCSS
		if r.webDir == "" {
			return
		}
		b, err := os.ReadFile(filepath.Join(r.webDir, "style.css"))
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		if err != nil {
			r.styleErr = fmt.Errorf("read style.css: %w", err)
			return
		}
		r.styleCSS = string(b)
	})
	return r.styleCSS, r.styleErr
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
