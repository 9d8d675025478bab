// ABOUTME: Bounded per-mode FIFO of recently generated titles used to steer generation away from repeats.
// ABOUTME: Owned by a Proxy; the mutex is held only for the append or the snapshot.
package textgen

import "sync"

// Default history sizes.
const (
	HistoryCapacity = 10
	BanListSize     = 5
)

// History keeps the most recent titles per mode.
type History struct {
	mu       sync.Mutex
	capacity int
	titles   map[Mode][]string
}

// NewHistory creates a History holding up to capacity titles per mode.
// A non-positive capacity uses HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &History{
		capacity: capacity,
		titles:   make(map[Mode][]string),
	}
}

// Add appends title to mode's history, evicting the oldest entry when full.
func (h *History) Add(mode Mode, title string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.titles[mode], title)
	if over := len(list) - h.capacity; over > 0 {
		list = append([]string(nil), list[over:]...)
	}
	h.titles[mode] = list
}

// Recent returns up to n of the newest titles for mode, oldest first.
func (h *History) Recent(mode Mode, n int) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.titles[mode]
	if n < len(list) {
		list = list[len(list)-n:]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of titles held for mode.
func (h *History) Len(mode Mode) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.titles[mode])
}
