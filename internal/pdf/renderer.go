// Package pdf prints the self-contained resume document to PDF through a
// headless Chrome instance.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

// Renderer prints HTML to PDF. ChromePath overrides the browser binary;
// when empty chromedp's default lookup applies.
type Renderer struct {
	ChromePath string
	Timeout    time.Duration
}

// NewRenderer builds a Renderer with a 60s print timeout.
func NewRenderer(chromePath string) *Renderer {
	return &Renderer{ChromePath: chromePath, Timeout: 60 * time.Second}
}

// RenderHTMLToPDF loads the given HTML in headless Chrome and returns the
// printed PDF. The document must be self-contained; nothing is fetched from
// the application after the snapshot is taken.
func (r *Renderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	printCtx, cancelPrint := context.WithTimeout(browserCtx, timeout)
	defer cancelPrint()

	// Chrome navigates to a file URL; serving the document back through the
	// application would re-read live state after the snapshot.
	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(printCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}
