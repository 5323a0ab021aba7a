package editor

import "sync"

// Buffer is the single editable text owned by the shell
type Buffer interface {
	Text() string
	SetText(text string)
}

// EditControl exposes the text widget's native history, clipboard and selection
type EditControl interface {
	Undo()
	Redo()
	Copy()
	Paste()
	SelectAll()
}

// MemoryBuffer is a Buffer with no widget behind it.
type MemoryBuffer struct {
	mu   sync.Mutex
	text string
}

func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{text: text}
}

func (b *MemoryBuffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *MemoryBuffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}
