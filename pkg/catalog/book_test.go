package catalog

import (
	"fmt"
	"testing"

	"github.com/jmylchreest/keylab/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewBookRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.Int().Draw(t, "id")
		name := rapid.String().Draw(t, "name")
		pages := rapid.IntRange(1, 1<<20).Draw(t, "pages")

		b, err := NewBook(id, name, pages)
		if err != nil {
			t.Fatalf("NewBook(%d, %q, %d) failed: %v", id, name, pages, err)
		}
		if b.ID() != id || b.Name() != name || b.Pages() != pages {
			t.Fatalf("read back (%d, %q, %d), want (%d, %q, %d)",
				b.ID(), b.Name(), b.Pages(), id, name, pages)
		}
	})
}

func TestNewBookRejectsNonPositivePages(t *testing.T) {
	for _, pages := range []int{0, -5} {
		t.Run(fmt.Sprintf("pages=%d", pages), func(t *testing.T) {
			b, err := NewBook(1, "test_name_1", pages)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, errors.ErrValue)
		})
	}
}

func TestNewBookIDNotValidated(t *testing.T) {
	b, err := NewBook(-3, "", 1)
	require.NoError(t, err)
	assert.Equal(t, -3, b.ID())
}

func TestBookFormatting(t *testing.T) {
	b, err := NewBook(3, "Not the main thing", 360)
	require.NoError(t, err)

	assert.Equal(t, `Book "Not the main thing"`, b.String())
	assert.Equal(t, `Book(id=3, name="Not the main thing", pages=360)`, b.GoString())
	assert.Equal(t, b.GoString(), fmt.Sprintf("%#v", b))
}

func TestParseBook(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		wantErr error
	}{
		{"valid", map[string]any{"id": 1, "name": "test_name_1", "pages": 200}, nil},
		{"int64 values", map[string]any{"id": int64(2), "name": "x", "pages": uint16(4)}, nil},
		{"string id", map[string]any{"id": "1", "name": "x", "pages": 200}, errors.ErrType},
		{"float pages", map[string]any{"id": 1, "name": "x", "pages": 200.0}, errors.ErrType},
		{"numeric name", map[string]any{"id": 1, "name": 42, "pages": 200}, errors.ErrType},
		{"missing name", map[string]any{"id": 1, "pages": 200}, errors.ErrType},
		{"zero pages", map[string]any{"id": 1, "name": "x", "pages": 0}, errors.ErrValue},
		{"overflowing id", map[string]any{"id": uint64(1 << 63), "name": "x", "pages": 1}, errors.ErrValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBook(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw["name"], b.Name())
		})
	}
}
