package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultPageBudget is the default number of pages before browser recycling.
const DefaultPageBudget = 60

// browserManager owns the Chrome process and recycles it after a page
// budget. Chrome accumulates memory under sustained scanning and never
// returns to its baseline, so a long multi-source scan needs periodic
// browser restarts.
//
// browserManager is safe for concurrent use.
type browserManager struct {
	mu         sync.Mutex
	browser    *rod.Browser
	launcher   *launcher.Launcher
	pageCount  int64
	pageBudget int64
	closed     atomic.Bool
}

func newBrowserManager(pageBudget int64) (*browserManager, error) {
	bm := &browserManager{pageBudget: pageBudget}
	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// acquire returns the current browser, recycling first when the page budget
// is spent. Callers must call pageDone after processing a page.
func (bm *browserManager) acquire() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if atomic.LoadInt64(&bm.pageCount) >= bm.pageBudget {
		bm.recycle()
	}

	return bm.browser
}

// pageDone records one processed page toward the recycling budget.
func (bm *browserManager) pageDone() {
	atomic.AddInt64(&bm.pageCount, 1)
}

// close shuts the browser down. Safe to call multiple times.
func (bm *browserManager) close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// launch starts a new browser instance with stability flags.
func (bm *browserManager) launch() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = lnchr
	return nil
}

// recycle starts a fresh browser and closes the old one. The old browser is
// kept when the new launch fails. Must be called with mu held.
func (bm *browserManager) recycle() {
	oldBrowser := bm.browser
	oldLauncher := bm.launcher
	bm.browser = nil
	bm.launcher = nil

	if err := bm.launch(); err != nil {
		bm.browser = oldBrowser
		bm.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&bm.pageCount, 0)
}

// pid returns the process ID of the browser launcher. Exists for tests to
// verify cleanup.
func (bm *browserManager) pid() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
