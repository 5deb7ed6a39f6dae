package browser

import (
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Headless bool
	Timeout  time.Duration
	Viewport playwright.Size
}

// Manager owns a playwright driver and one chromium instance.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	log     logrus.FieldLogger
}

func NewManager(opts Options, log logrus.FieldLogger) (*Manager, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Viewport.Width == 0 || opts.Viewport.Height == 0 {
		opts.Viewport = playwright.Size{Width: 1280, Height: 720}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return nil, fmt.Errorf("install pw failed: %w", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start pw failed: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium failed: %w", err)
	}

	return &Manager{
		pw:      pw,
		browser: b,
		opts:    opts,
		log:     log,
	}, nil
}

func (m *Manager) Close() {
	if m.browser != nil {
		_ = m.browser.Close()
	}
	if m.pw != nil {
		_ = m.pw.Stop()
	}
}
