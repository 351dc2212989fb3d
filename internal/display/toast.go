package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
)

// DefaultToastTTL is how long a notice stays up.
const DefaultToastTTL = 3 * time.Second

const clearLine = "\r\033[2K"

// Toast shows one notice at a time and dismisses it after a TTL. A newer
// notice replaces the current one and restarts the timer.
type Toast struct {
	w     io.Writer
	ttl   time.Duration
	erase bool
	style lipgloss.Style

	mu      sync.Mutex
	timer   *time.Timer
	visible bool
	seq     int
	done    chan struct{}
}

// NewToast returns a Toast writing to w. When erase is set the notice line is
// cleared on dismissal, which only makes sense on a terminal.
func NewToast(w io.Writer, ttl time.Duration, erase bool) *Toast {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Toast{
		w:     w,
		ttl:   ttl,
		erase: erase,
		style: lipgloss.NewStyle().Foreground(theme.DefaultColors.Green),
	}
}

// Notify shows msg and schedules its dismissal.
func (t *Toast) Notify(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	if t.visible && t.erase {
		io.WriteString(t.w, clearLine)
	}
	if t.done == nil || !t.visible {
		t.done = make(chan struct{})
	}

	fmt.Fprint(t.w, t.style.Render(theme.IconChecklist+" "+msg))
	if !t.erase {
		io.WriteString(t.w, "\n")
	}

	t.visible = true
	t.seq++
	seq := t.seq
	t.timer = time.AfterFunc(t.ttl, func() { t.dismiss(seq) })
}

// Visible reports whether a notice is currently shown.
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Done returns a channel closed when the current notice is dismissed. It is
// nil when nothing has been shown.
func (t *Toast) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Close dismisses any visible notice right away.
func (t *Toast) Close() {
	t.mu.Lock()
	seq := t.seq
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()
	t.dismiss(seq)
}

func (t *Toast) dismiss(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq || !t.visible {
		return
	}
	if t.erase {
		io.WriteString(t.w, clearLine)
	}
	t.visible = false
	close(t.done)
}
