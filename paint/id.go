package paint

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a layer, widget or animation. It is a 64-bit hash of
// whatever source the caller chose: typically a label string, optionally
// combined with parent ids to keep children unique.
//
// IDs are cheap to compare and usable as map keys. Two IDs are equal iff
// they were built from the same source chain (hash collisions aside).
type ID uint64

// IDNil is the zero ID. It never names a real layer or widget.
const IDNil ID = 0

// NewID returns the ID for the given source string.
func NewID(source string) ID {
	return ID(xxhash.Sum64String(source))
}

// With returns a child ID derived from this ID and the given source.
// Deriving keeps equal labels in different parents distinct.
func (id ID) With(source string) ID {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(source)
	return ID(d.Sum64())
}

// WithIndex returns a child ID derived from this ID and an index.
// Useful for repeated elements such as strip cells or list rows.
func (id ID) WithIndex(i int) ID {
	var d xxhash.Digest
	d.Reset()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(i)))
	_, _ = d.Write(buf[:])
	return ID(d.Sum64())
}

// ShortDebugFormat returns a short hex summary for log messages.
func (id ID) ShortDebugFormat() string {
	return fmt.Sprintf("%04X", uint64(id)&0xFFFF)
}
