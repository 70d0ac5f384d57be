// Linear image state history with undo/redo
package core

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Transformer computes a new image from the current one. Implementations are
// pure: they never retain or mutate the input buffer.
type Transformer interface {
	Transform(buf ImageBuffer, op string, params map[string]interface{}) (ImageBuffer, error)
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(buf ImageBuffer, op string, params map[string]interface{}) (ImageBuffer, error)

func (f TransformerFunc) Transform(buf ImageBuffer, op string, params map[string]interface{}) (ImageBuffer, error) {
	return f(buf, op, params)
}

// Entry pairs a buffer with the operation that produced it.
type Entry struct {
	Buffer ImageBuffer
	Op     string
	Params map[string]interface{}
}

// OpLoad names the entry created by loading an image, OpReset the entry
// created by resetting to the oldest retained state.
const (
	OpLoad  = "load"
	OpReset = "reset"
)

// DefaultHistoryLimit caps retained entries; oldest entries are dropped
// beyond it. Decoded frames are large, so unbounded growth is not an option
// for long editing sessions.
const DefaultHistoryLimit = 100

// History owns the current image and the ordered states reachable by
// undo/redo. All mutation goes through Load, Apply, Undo, Redo, and Reset;
// a failed call never changes the sequence or the cursor.
type History struct {
	mu        sync.RWMutex
	transform Transformer
	logger    *logrus.Logger

	entries []Entry
	cursor  int
	limit   int
	source  string
}

// NewHistory creates an empty history backed by the given transformer.
func NewHistory(transform Transformer, logger *logrus.Logger) *History {
	return NewHistoryWithLimit(transform, logger, DefaultHistoryLimit)
}

// NewHistoryWithLimit creates an empty history retaining at most limit
// entries. A limit of 0 means unbounded.
func NewHistoryWithLimit(transform Transformer, logger *logrus.Logger, limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{
		transform: transform,
		logger:    logger,
		limit:     limit,
	}
}

// Load replaces all history with the given buffer as the single entry.
// Loading is not an undoable edit relative to the previous image.
func (h *History) Load(buf ImageBuffer, source string) (ImageBuffer, error) {
	if buf.IsZero() {
		return ImageBuffer{}, &DecodeError{Path: source, Err: errors.New("empty image buffer")}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = []Entry{{Buffer: buf, Op: OpLoad}}
	h.cursor = 0
	h.source = source

	h.logger.WithFields(logrus.Fields{
		"source": source,
		"width":  buf.Width(),
		"height": buf.Height(),
	}).Info("Image loaded, history reset")

	return buf, nil
}

// Apply runs the named operation on the current buffer and records the
// result as the new current entry. Any redo-able entries beyond the cursor
// are discarded first. On failure the history is left exactly as it was.
func (h *History) Apply(op string, params map[string]interface{}) (ImageBuffer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return ImageBuffer{}, ErrEmptyHistory
	}

	out, err := h.transform.Transform(h.entries[h.cursor].Buffer, op, params)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"op":    op,
			"error": err,
		}).Warn("Transform failed, history unchanged")
		return ImageBuffer{}, err
	}

	h.push(Entry{Buffer: out, Op: op, Params: copyParams(params)})

	h.logger.WithFields(logrus.Fields{
		"op":      op,
		"cursor":  h.cursor,
		"entries": len(h.entries),
		"width":   out.Width(),
		"height":  out.Height(),
	}).Debug("Operation applied")

	return out, nil
}

// push truncates entries beyond the cursor, appends, and advances, then
// enforces the retention limit by dropping the oldest entry.
func (h *History) push(e Entry) {
	h.entries = append(h.entries[:h.cursor+1], e)
	h.cursor++

	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append([]Entry(nil), h.entries[drop:]...)
		h.cursor -= drop
	}
}

// Undo moves the cursor one entry back and returns the buffer now current.
func (h *History) Undo() (ImageBuffer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return ImageBuffer{}, ErrEmptyHistory
	}
	if h.cursor == 0 {
		return ImageBuffer{}, ErrNoMoreHistory
	}

	h.cursor--
	return h.entries[h.cursor].Buffer, nil
}

// Redo moves the cursor one entry forward and returns the buffer now current.
func (h *History) Redo() (ImageBuffer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return ImageBuffer{}, ErrEmptyHistory
	}
	if h.cursor == len(h.entries)-1 {
		return ImageBuffer{}, ErrNoMoreHistory
	}

	h.cursor++
	return h.entries[h.cursor].Buffer, nil
}

// Current returns the buffer at the cursor.
func (h *History) Current() (ImageBuffer, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return ImageBuffer{}, ErrEmptyHistory
	}
	return h.entries[h.cursor].Buffer, nil
}

// Reset pushes the oldest retained buffer as a new entry. The reset itself
// is undoable, matching editor convention for "revert to original".
func (h *History) Reset() (ImageBuffer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return ImageBuffer{}, ErrEmptyHistory
	}

	original := h.entries[0].Buffer
	h.push(Entry{Buffer: original, Op: OpReset})
	return original, nil
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries) > 0 && h.cursor < len(h.entries)-1
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Cursor returns the index of the current entry.
func (h *History) Cursor() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor
}

// Source returns the path or name the current image was loaded from.
func (h *History) Source() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.source
}

// Describe returns the name of the operation that produced the current entry.
func (h *History) Describe() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[h.cursor].Op
}

func copyParams(params map[string]interface{}) map[string]interface{} {
	if params == nil {
		return nil
	}
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
