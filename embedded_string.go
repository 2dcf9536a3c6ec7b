// Package embedstr provides EmbeddedString, a string value that keeps short text inside
// itself and only allocates for text longer than EmbedLimit bytes.
package embedstr

import (
	"encoding/binary"
	"strconv"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// EmbedLimit is the maximum byte length stored inline.
// Longer text is always boxed in a separately allocated buffer.
const EmbedLimit = 15

// lenWidth is the number of payload bytes holding the length of a boxed string.
const lenWidth = 8

// The payload must be able to hold the boxed length, and the inline length must fit in a uint8.
var (
	_ [EmbedLimit - lenWidth]struct{}
	_ = uint8(EmbedLimit)
)

// Mode reports which storage an EmbeddedString uses.
type Mode uint8

const (
	// Embedded means the bytes live inside the value itself.
	Embedded Mode = iota
	// Boxed means the bytes live in a heap buffer owned by the value.
	Boxed
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Embedded:
		return "Embedded"
	case Boxed:
		return "Boxed"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// EmbeddedString is an immutable string that avoids heap allocation for text of at most
// EmbedLimit bytes. The zero value is the empty string.
//
// EmbeddedString is not comparable with ==; use Equal, Compare or Hash.
type EmbeddedString struct {
	_ [0]func()

	// ptr owns the boxed buffer. It is nil for embedded strings.
	ptr *byte
	// size is the embedded length. Unused when boxed.
	size uint8
	// buf holds the embedded bytes, or the boxed length in its first lenWidth bytes.
	buf [EmbedLimit]byte
}

// NewEmbeddedString creates an EmbeddedString holding a copy of s.
func NewEmbeddedString(s string) EmbeddedString {
	var e EmbeddedString
	if len(s) <= EmbedLimit {
		e.size = uint8(len(s))
		copy(e.buf[:], s)
		return e
	}
	e.box(strings.Clone(s))
	return e
}

// From creates an EmbeddedString from any string-based type.
func From[S ~string](s S) EmbeddedString {
	return NewEmbeddedString(string(s))
}

// NewEmbeddedStrings creates an EmbeddedString slice from a string slice.
func NewEmbeddedStrings(s []string) []EmbeddedString {
	res := make([]EmbeddedString, len(s))
	for i, s := range s {
		res[i] = NewEmbeddedString(s)
	}
	return res
}

// Strings converts a slice of EmbeddedString back into owned Go strings.
func Strings(es []EmbeddedString) []string {
	res := make([]string, len(es))
	for i := range es {
		res[i] = es[i].String()
	}
	return res
}

// fromBytes builds an EmbeddedString without an intermediate copy of b on either path.
func fromBytes(b []byte) EmbeddedString {
	var e EmbeddedString
	if len(b) <= EmbedLimit {
		e.size = uint8(len(b))
		copy(e.buf[:], b)
		return e
	}
	e.box(string(b))
	return e
}

// box takes ownership of s, which must be longer than EmbedLimit and referenced by nobody else.
func (e *EmbeddedString) box(s string) {
	e.ptr = unsafe.StringData(s)
	binary.LittleEndian.PutUint64(e.buf[:lenWidth], uint64(len(s)))
}

// Str returns a read-only view of the text.
//
// The view borrows from e: for embedded strings it points into e itself, so it must not
// outlive e nor be used after e is overwritten.
func (e *EmbeddedString) Str() string {
	if e.ptr != nil {
		return unsafe.String(e.ptr, int(binary.LittleEndian.Uint64(e.buf[:lenWidth])))
	}
	return unsafe.String(&e.buf[0], int(e.size))
}

// Mode returns the storage mode.
func (e EmbeddedString) Mode() Mode {
	if e.ptr != nil {
		return Boxed
	}
	return Embedded
}

// Len returns the length of the text in bytes.
func (e EmbeddedString) Len() int {
	if e.ptr != nil {
		return int(binary.LittleEndian.Uint64(e.buf[:lenWidth]))
	}
	return int(e.size)
}

// IsEmpty reports whether the text is empty.
func (e EmbeddedString) IsEmpty() bool {
	return e.ptr == nil && e.size == 0
}

// Equal reports whether e and other hold the same text.
func (e EmbeddedString) Equal(other EmbeddedString) bool {
	return e.Str() == other.Str()
}

// Compare compares the texts of e and other byte-lexicographically.
// The result is 0 if they are equal, -1 if e sorts first and +1 otherwise.
func (e EmbeddedString) Compare(other EmbeddedString) int {
	return strings.Compare(e.Str(), other.Str())
}

// Hash returns the 64-bit xxHash of the text. It does not depend on the mode.
func (e EmbeddedString) Hash() uint64 {
	return xxhash.Sum64String(e.Str())
}

// Clone returns a copy of e that owns its own boxed buffer.
func (e EmbeddedString) Clone() EmbeddedString {
	if e.ptr == nil {
		return e
	}
	var c EmbeddedString
	c.box(strings.Clone(e.Str()))
	return c
}

// String returns the text as an ordinary Go string.
// Boxed text is returned without copying, since the boxed buffer is never written.
func (e EmbeddedString) String() string {
	if e.ptr != nil {
		return e.Str()
	}
	return string(e.buf[:e.size])
}

// GoString returns the mode and the quoted text, e.g. Embedded("a").
func (e EmbeddedString) GoString() string {
	return e.Mode().String() + "(" + strconv.Quote(e.Str()) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (e EmbeddedString) MarshalText() ([]byte, error) {
	return []byte(e.Str()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It replaces the contents of e, invalidating views previously returned by Str.
func (e *EmbeddedString) UnmarshalText(text []byte) error {
	*e = fromBytes(text)
	return nil
}
