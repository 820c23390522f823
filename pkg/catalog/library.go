package catalog

import (
	"github.com/jmylchreest/keylab/internal/decode"
	"github.com/jmylchreest/keylab/internal/errors"
)

// Library is an ordered collection of books. Callers add books by appending
// to Books; no uniqueness of ids is enforced.
type Library struct {
	Books []*Book
}

// NewLibrary creates a library owning a fresh slice holding the given books.
func NewLibrary(books ...*Book) *Library {
	owned := make([]*Book, 0, len(books))
	owned = append(owned, books...)
	return &Library{Books: owned}
}

// LoadLibrary builds a library from an untyped sequence, e.g. the
// library.books configuration key. Elements may be *Book values or records
// accepted by ParseBook.
func LoadLibrary(raw any) (*Library, error) {
	switch seq := raw.(type) {
	case []*Book:
		for i, b := range seq {
			if b == nil {
				return nil, errors.Valuef("books[%d] is nil", i)
			}
		}
		return NewLibrary(seq...), nil
	case []map[string]any:
		lib := NewLibrary()
		for i, rec := range seq {
			b, err := ParseBook(rec)
			if err != nil {
				return nil, errors.WrapErrorf(err, "books[%d]", i)
			}
			lib.Books = append(lib.Books, b)
		}
		return lib, nil
	case []any:
		lib := NewLibrary()
		for i, elem := range seq {
			b, err := bookFromAny(elem)
			if err != nil {
				return nil, errors.WrapErrorf(err, "books[%d]", i)
			}
			lib.Books = append(lib.Books, b)
		}
		return lib, nil
	default:
		return nil, errors.Typef("books must be a list, got %T", raw)
	}
}

func bookFromAny(v any) (*Book, error) {
	switch e := v.(type) {
	case *Book:
		if e == nil {
			return nil, errors.Valuef("book is nil")
		}
		return e, nil
	default:
		rec, err := decode.StringMap(v)
		if err != nil {
			return nil, err
		}
		return ParseBook(rec)
	}
}

// NextBookID returns the identifier for the next book to add. It is based
// on the number of books held, not on the largest id present, so it goes
// wrong once books are removed or added out of order.
func (l *Library) NextBookID() int {
	if len(l.Books) == 0 {
		return 1
	}
	return len(l.Books) + 1
}

// IndexByBookID returns the position of the first book with the given id.
// Nil entries are skipped.
func (l *Library) IndexByBookID(id int) (int, error) {
	for i, b := range l.Books {
		if b != nil && b.ID() == id {
			return i, nil
		}
	}
	return 0, errors.Valuef("no book with id %d", id)
}
