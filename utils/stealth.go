package utils

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// hideAutomationJS masks the navigator properties that bot checks read.
const hideAutomationJS = `
	Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
	Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
	Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
`

// stealthFlags are the Chrome switches every session is launched with.
//
// Key flags:
//   - ignore-certificate-errors / ignore-ssl-errors → accept any TLS chain
//   - disable-blink-features=AutomationControlled → removes navigator.webdriver flag
//   - enable-automation=false → drops the "controlled by automated software" switch
//   - start-maximized → a full viewport, also when headless (see WindowSize)
var stealthFlags = []struct {
	Name  string
	Value interface{}
}{
	{"no-first-run", true},
	{"no-default-browser-check", true},
	{"ignore-certificate-errors", true},
	{"ignore-ssl-errors", true},
	{"disable-blink-features", "AutomationControlled"},
	{"enable-automation", false},
	{"start-maximized", true},
	{"disable-gpu", true},
	{"no-sandbox", true},
	{"disable-dev-shm-usage", true},
}

// StealthOpts returns ChromeDP browser launch options that hide automation.
func StealthOpts(headless bool) []chromedp.ExecAllocatorOption {
	opts := make([]chromedp.ExecAllocatorOption, 0, len(stealthFlags)+3)
	for _, f := range stealthFlags {
		opts = append(opts, chromedp.Flag(f.Name, f.Value))
	}
	opts = append(opts,
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

// HideWebDriver registers the masking script so it runs before any page
// script on every document the tab loads.
func HideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		_, err := page.AddScriptToEvaluateOnNewDocument(hideAutomationJS).Do(ctx)
		return err
	})
}
