package olx

import (
	"context"
	"fmt"
	"olx-scraper/utils"
	"time"

	"github.com/chromedp/chromedp"
)

// Session is a browser tab the scraper drives. Browser is the real one.
type Session interface {
	// Navigate loads url and then waits settle for client-side rendering.
	Navigate(url string, settle time.Duration) error
	// HTML returns the rendered document markup.
	HTML() (string, error)
	Close()
}

type Browser struct {
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

// NewBrowser launches Chrome with the stealth options and opens one tab.
// The process is started eagerly so a launch failure surfaces here.
func NewBrowser(ctx context.Context, headless bool) (*Browser, error) {
	utils.Info("Launching Chrome browser...")
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, utils.StealthOpts(headless)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(tabCtx, utils.HideWebDriver()); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	utils.Success("Browser ready")
	return &Browser{
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
	}, nil
}

func (b *Browser) Navigate(url string, settle time.Duration) error {
	err := chromedp.Run(b.tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(settle),
	)
	if err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (b *Browser) HTML() (string, error) {
	var html string
	if err := chromedp.Run(b.tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return html, nil
}

// Close shuts the tab and the browser process. Safe to call more than once.
func (b *Browser) Close() {
	utils.Info("Closing browser...")
	b.tabCancel()
	b.allocCancel()
}
