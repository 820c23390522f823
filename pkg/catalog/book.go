// Package catalog models a small library catalog: immutable books and an
// ordered library that hands out identifiers for new books.
package catalog

import (
	"fmt"

	"github.com/jmylchreest/keylab/internal/decode"
	"github.com/jmylchreest/keylab/internal/errors"
)

// Book is a catalog entry. Fields are fixed at construction.
type Book struct {
	id    int
	name  string
	pages int
}

// NewBook creates a book. The id is caller-supplied and not checked;
// pages must be positive.
func NewBook(id int, name string, pages int) (*Book, error) {
	if pages <= 0 {
		return nil, errors.Valuef("pages must be positive, got %d", pages)
	}
	return &Book{id: id, name: name, pages: pages}, nil
}

// ID returns the book identifier
func (b *Book) ID() int { return b.id }

// Name returns the book title
func (b *Book) Name() string { return b.name }

// Pages returns the page count
func (b *Book) Pages() int { return b.pages }

// String returns the human-readable form with the name quoted
func (b *Book) String() string {
	return fmt.Sprintf("Book %q", b.name)
}

// GoString reproduces the constructor arguments
func (b *Book) GoString() string {
	return fmt.Sprintf("Book(id=%d, name=%q, pages=%d)", b.id, b.name, b.pages)
}

// ParseBook builds a book from an untyped record such as an entry of the
// seed catalog in the configuration file. Keys are "id", "name" and "pages".
func ParseBook(raw map[string]any) (*Book, error) {
	id, err := decode.Int(raw["id"])
	if err != nil {
		return nil, errors.WrapErrorf(err, "id")
	}
	name, ok := raw["name"].(string)
	if !ok {
		return nil, errors.Typef("name must be a string, got %T", raw["name"])
	}
	pages, err := decode.Int(raw["pages"])
	if err != nil {
		return nil, errors.WrapErrorf(err, "pages")
	}
	return NewBook(id, name, pages)
}
