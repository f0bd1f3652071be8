package ratelimit

import (
	"context"
	"sync"
	"time"
)

// 超過此數量的 key 時順便清掉過期的 window
const sweepThreshold = 1024

type window struct {
	count     int
	startedAt time.Time
}

/*
固定窗口, 每個 key 各自計數
窗口交界處會有突刺問題, 登入限流可接受
*/
type FixedWindow struct {
	LimiterConfig
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewFixedWindow(config *LimiterConfig) *FixedWindow {
	fw := &FixedWindow{
		windows: make(map[string]*window),
		now:     time.Now,
	}
	if config != nil {
		fw.LimiterConfig = *config
	} else {
		fw.LimiterConfig = GetDefaultLimiterConfig()
	}
	return fw
}

func (w *FixedWindow) Allow(_ context.Context, key string) (bool, error) {
	current := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.windows) > sweepThreshold {
		w.sweep(current)
	}

	win, ok := w.windows[key]
	if !ok || current.Sub(win.startedAt) >= w.Window {
		win = &window{startedAt: current}
		w.windows[key] = win
	}

	if win.count+1 > w.Capacity {
		return false, nil
	}
	win.count++
	return true, nil
}

func (w *FixedWindow) sweep(current time.Time) {
	for k, win := range w.windows {
		if current.Sub(win.startedAt) >= w.Window {
			delete(w.windows, k)
		}
	}
}
