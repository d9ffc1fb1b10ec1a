package app

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/dshills/ropetext/internal/engine/buffer"
	"github.com/dshills/ropetext/internal/textio"
)

// ScratchName is the display name of a document with no path.
const ScratchName = "Untitled"

// Document is an open file and the buffer editing it.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name.
	Name string

	// Buffer holds the text, selections and history.
	Buffer *buffer.TextBuffer

	// Format is how the file was stored; Save writes it back the same way.
	Format textio.Format
}

// OpenDocument loads path into a new buffer. A missing file opens empty
// and is created on the first save.
func OpenDocument(path string, opts ...buffer.Option) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	text, format, err := textio.Load(abs)
	defer text.Release()
	if err != nil {
		return nil, NewOperationError("open", abs, err)
	}

	return &Document{
		Path:   abs,
		Name:   filepath.Base(abs),
		Buffer: buffer.New(text, opts...),
		Format: format,
	}, nil
}

// NewScratchDocument creates an empty document with no path.
func NewScratchDocument(opts ...buffer.Option) *Document {
	return &Document{
		Name:   ScratchName,
		Buffer: buffer.NewFromString("", opts...),
	}
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified reports whether the text differs from the last save.
func (d *Document) IsModified() bool {
	return d.Buffer.IsModified()
}

// Save writes the buffer to its path and marks it clean.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", d.Name, ErrNoFilePath)
	}

	// An open typing action becomes an undo step of its own.
	d.Buffer.Commit()

	text := d.Buffer.Rope()
	defer text.Release()
	if err := textio.Save(d.Path, text, d.Format); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.Buffer.MarkClean()
	return nil
}

// SaveAs points the document at path and saves it there.
func (d *Document) SaveAs(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return NewOperationError("save", path, err)
	}
	d.Path = abs
	d.Name = filepath.Base(abs)
	return d.Save()
}

// Close releases the buffer.
func (d *Document) Close() {
	d.Buffer.Close()
}

// DocumentManager keeps the open documents in the order they were opened
// and tracks the active one.
type DocumentManager struct {
	mu      sync.RWMutex
	docs    []*Document
	active  int
	opts    []buffer.Option
	scratch int
}

// NewDocumentManager creates a manager whose buffers are built with opts.
func NewDocumentManager(opts ...buffer.Option) *DocumentManager {
	return &DocumentManager{active: -1, opts: opts}
}

// Open opens path and makes it active. A file that is already open is
// activated instead of loaded again.
func (dm *DocumentManager) Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	dm.mu.Lock()
	defer dm.mu.Unlock()

	if i := slices.IndexFunc(dm.docs, func(d *Document) bool { return d.Path == abs }); i >= 0 {
		dm.active = i
		return dm.docs[i], nil
	}

	doc, err := OpenDocument(abs, dm.opts...)
	if err != nil {
		return nil, err
	}
	dm.docs = append(dm.docs, doc)
	dm.active = len(dm.docs) - 1
	return doc, nil
}

// CreateScratch adds an empty document and makes it active.
func (dm *DocumentManager) CreateScratch() *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	dm.scratch++
	doc := NewScratchDocument(dm.opts...)
	if dm.scratch > 1 {
		doc.Name = fmt.Sprintf("%s-%d", ScratchName, dm.scratch)
	}
	dm.docs = append(dm.docs, doc)
	dm.active = len(dm.docs) - 1
	return doc
}

// Active returns the active document, or nil when none is open.
func (dm *DocumentManager) Active() *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	if dm.active < 0 {
		return nil
	}
	return dm.docs[dm.active]
}

// Next activates the following document, wrapping around.
func (dm *DocumentManager) Next() *Document {
	return dm.step(1)
}

// Previous activates the preceding document, wrapping around.
func (dm *DocumentManager) Previous() *Document {
	return dm.step(-1)
}

func (dm *DocumentManager) step(delta int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	n := len(dm.docs)
	if n == 0 {
		return nil
	}
	dm.active = ((dm.active+delta)%n + n) % n
	return dm.docs[dm.active]
}

// All returns the open documents in the order they were opened.
func (dm *DocumentManager) All() []*Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return slices.Clone(dm.docs)
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.docs)
}

// HasDirty returns true if any document has unsaved changes.
func (dm *DocumentManager) HasDirty() bool {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return slices.ContainsFunc(dm.docs, (*Document).IsModified)
}

// Each calls fn for every open document.
func (dm *DocumentManager) Each(fn func(*Document)) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	for _, doc := range dm.docs {
		fn(doc)
	}
}

// CloseAll releases every document.
func (dm *DocumentManager) CloseAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, doc := range dm.docs {
		doc.Close()
	}
	dm.docs = nil
	dm.active = -1
}
