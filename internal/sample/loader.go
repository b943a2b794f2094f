package sample

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

// Load reads and parses the data file at path. A missing file is not an
// error: the built-in document is returned so first runs start populated.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Data file %s not found, using built-in sample data", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Loader reads data files for the UI and caches the last document
type Loader struct {
	mu       sync.RWMutex
	path     string
	doc      *Document
	onLoaded func(*Document) // callback for UI updates
}

// NewLoader creates a loader for the given data file path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// SetLoadedCallback sets the callback invoked when an async load finishes
func (l *Loader) SetLoadedCallback(callback func(*Document)) {
	l.onLoaded = callback
}

// SetPath changes the data file used by subsequent loads
func (l *Loader) SetPath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

// Path returns the data file the loader reads from
func (l *Loader) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}

// Document returns the most recently loaded document, nil before the
// first load.
func (l *Loader) Document() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.doc
}

// Load reads the loader's data file synchronously and caches the result
func (l *Loader) Load() (*Document, error) {
	doc, err := Load(l.Path())
	if err != nil {
		return nil, err
	}

	l.setDocument(doc)
	return doc, nil
}

// LoadAsync loads the data file on a background goroutine and delivers
// the result through the loaded callback. Unparseable files fall back to
// the built-in document so the UI always has data to show.
func (l *Loader) LoadAsync() {
	go func() {
		doc, err := l.Load()
		if err != nil {
			log.Printf("Failed to load data file: %v", err)
			doc = Default()
			l.setDocument(doc)
		}
		l.notifyLoaded(doc)
	}()
}

func (l *Loader) setDocument(doc *Document) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.doc = doc
}

// notifyLoaded calls the loaded callback if set
func (l *Loader) notifyLoaded(doc *Document) {
	if l.onLoaded != nil {
		l.onLoaded(doc)
	}
}
