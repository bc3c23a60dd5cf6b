// Package chrome drives a headless Chrome through the DevTools protocol for
// the shorts discovery loop.
package chrome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"shortsbatcher/internal/core/domain"
	"shortsbatcher/internal/core/ports"
)

// UserAgent is sent instead of the automation default.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.75 Safari/537.36"

// Browser implements ports.Browser with chromedp.
type Browser struct {
	logger *slog.Logger
}

// NewBrowser creates a new Browser.
func NewBrowser(logger *slog.Logger) *Browser {
	return &Browser{logger: logger}
}

// Launch starts Chrome and opens one tab. The browser is torn down when the
// session is closed or ctx is cancelled.
func (b *Browser) Launch(ctx context.Context, opts domain.BrowserOptions) (ports.BrowserSession, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, AllocatorOptions(opts)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			b.logger.Debug("chrome", "message", fmt.Sprintf(format, args...))
		}),
	)

	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: start chrome: %v", ports.ErrBrowserSession, err)
	}
	b.logger.Debug("chrome started", "headless", opts.Headless, "proxy", opts.Proxy != "")

	return &Session{
		ctx:         tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
	}, nil
}

// AllocatorOptions translates the capability toggles into Chrome flags.
func AllocatorOptions(opts domain.BrowserOptions) []chromedp.ExecAllocatorOption {
	o := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)

	var headless any = false
	if opts.Headless {
		headless = "new"
	}
	o = append(o,
		chromedp.Flag("headless", headless),
		chromedp.Flag("no-sandbox", opts.NoSandbox),
		chromedp.Flag("disable-dev-shm-usage", opts.DisableDevShmUsage),
		chromedp.Flag("disable-notifications", opts.DisableNotifications),
		chromedp.Flag("disable-extensions", opts.DisableExtensions),
		chromedp.Flag("disable-gpu", opts.DisableGPU),
		chromedp.Flag("enable-webgl", opts.EnableWebGL),
		chromedp.Flag("enable-smooth-scrolling", opts.EnableSmoothScrolling),
		chromedp.Flag("start-maximized", opts.StartMaximized),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-logging", true),
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent(UserAgent),
	)
	if opts.LangEnUS {
		o = append(o, chromedp.Flag("lang", "en-US"))
	}
	if opts.Proxy != "" {
		o = append(o, chromedp.ProxyServer(opts.Proxy))
	}
	if opts.ExecPath != "" {
		o = append(o, chromedp.ExecPath(opts.ExecPath))
	}
	return o
}

// Session is one Chrome tab.
type Session struct {
	ctx         context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	closeOnce   sync.Once
	closeErr    error
}

// Navigate implements ports.BrowserSession.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("%w: navigate: %v", ports.ErrBrowserSession, err)
	}
	return nil
}

// WaitFor implements ports.BrowserSession.
func (s *Session) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	waitCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded) && s.ctx.Err() == nil:
		return fmt.Errorf("%w: %s after %s", ports.ErrElementTimeout, selector, timeout)
	default:
		return fmt.Errorf("%w: wait for %s: %v", ports.ErrBrowserSession, selector, err)
	}
}

// Scroll implements ports.BrowserSession.
func (s *Session) Scroll(ctx context.Context, method domain.ScrollMethod) error {
	var action chromedp.Action
	switch method {
	case domain.ScrollEndKey:
		action = chromedp.SendKeys("body", kb.End, chromedp.ByQuery)
	case domain.ScrollJSBottom:
		action = evaluateTrue(`window.scrollTo(0, Math.max(document.body.scrollHeight, document.documentElement.scrollHeight))`)
	case domain.ScrollJSViewport:
		action = evaluateTrue(`window.scrollBy(0, window.innerHeight)`)
	default:
		return fmt.Errorf("unknown scroll method %q", method)
	}
	return chromedp.Run(s.ctx, action)
}

// Count implements ports.BrowserSession.
func (s *Session) Count(ctx context.Context, selector string) (int, error) {
	var n int
	expr := fmt.Sprintf(`document.querySelectorAll(%s).length`, jsString(selector))
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(expr, &n)); err != nil {
		return 0, err
	}
	return n, nil
}

// Hrefs implements ports.BrowserSession.
func (s *Session) Hrefs(ctx context.Context, selector string) ([]string, error) {
	var hrefs []string
	expr := fmt.Sprintf(`Array.from(document.querySelectorAll(%s), a => a.getAttribute("href")).filter(Boolean)`, jsString(selector))
	if err := chromedp.Run(s.ctx, chromedp.Evaluate(expr, &hrefs)); err != nil {
		return nil, err
	}
	return hrefs, nil
}

// Close shuts the tab and the browser process. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := chromedp.Cancel(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.closeErr = err
		}
		s.tabCancel()
		s.allocCancel()
	})
	return s.closeErr
}

func evaluateTrue(script string) chromedp.Action {
	var ok bool
	return chromedp.Evaluate(`(() => { `+script+`; return true; })()`, &ok)
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
