// Package resultbuffer implements the streaming table of partial-mapping
// records the bottom-up tree DP passes from a nice-tree node to its parent:
// each record is a candidate image of the node's bag vertices in G, plus
// the distinct sets of colors some coloring achieved for that image.
//
// Grounded on original_source/src/resbuf.c: encode_num/decode_num there
// delta-encode every integer against the previous one written and varint
// it through libucw's varint_put/varint_get32; Buffer does the same delta
// step but hands the varint itself to encoding/binary's Uvarint, since Go's
// standard library already provides exactly that primitive.
//
// Complexity: O(1) amortized per integer written or read.
//
// Errors: ErrWrongMode if Push is called in Read mode or vice versa.
package resultbuffer

import (
	"encoding/binary"
	"errors"
)

// Mode selects whether a Buffer is being appended to or drained.
type Mode int

const (
	// Write is the mode a freshly constructed Buffer starts in.
	Write Mode = iota
	// Read switches a Buffer, once fully populated, to sequential readback.
	Read
)

// ErrWrongMode is returned when Push is called on a Buffer in Read mode,
// or Read is called on one in Write mode.
var ErrWrongMode = errors.New("resultbuffer: operation not valid in current mode")

// Buffer is an append-only, then read-once, varint+delta-encoded stream of
// records. SetMode(Read) rewinds it for readback; resbuf_chng_state in the
// original does the same reset of its cursor and delta baseline on a mode
// flip, which is why last and readPos both reset together here.
type Buffer struct {
	mode    Mode
	buf     []byte
	last    int64
	readPos int
}

// NewResultBuffer returns an empty Buffer ready to Push records into.
func NewResultBuffer() *Buffer {
	return &Buffer{mode: Write}
}

// SetMode switches m's mode, resetting the delta baseline and (for Read)
// the read cursor to the start of the buffer.
func (b *Buffer) SetMode(m Mode) {
	b.mode = m
	b.last = 0
	b.readPos = 0
}

// Mode reports b's current mode.
func (b *Buffer) Mode() Mode {
	return b.mode
}

// Push appends one record: a partial mapping phi (G-vertex ids, indexed by
// bag position) and the distinct color-subset masks some coloring achieved
// for it.
func (b *Buffer) Push(phi []int32, colors []uint32) error {
	if b.mode != Write {
		return ErrWrongMode
	}
	b.encodeNum(int64(len(phi)))
	for _, p := range phi {
		b.encodeNum(int64(p))
	}
	b.encodeNum(int64(len(colors)))
	for _, c := range colors {
		b.encodeNum(int64(c))
	}
	return nil
}

// Read pulls the next record off b, returning ok=false once the stream is
// exhausted.
func (b *Buffer) Read() (phi []int32, colors []uint32, ok bool, err error) {
	if b.mode != Read {
		return nil, nil, false, ErrWrongMode
	}
	n, present := b.decodeNum()
	if !present {
		return nil, nil, false, nil
	}
	phi = make([]int32, n)
	for i := range phi {
		v, _ := b.decodeNum()
		phi[i] = int32(v)
	}
	cn, _ := b.decodeNum()
	colors = make([]uint32, cn)
	for i := range colors {
		v, _ := b.decodeNum()
		colors[i] = uint32(v)
	}
	return phi, colors, true, nil
}

// Len returns the number of encoded bytes currently buffered.
func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) encodeNum(v int64) {
	delta := v - b.last
	b.last = v
	zigzag := uint64(delta<<1) ^ uint64(delta>>63)
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], zigzag)
	b.buf = append(b.buf, tmp[:n]...)
}

func (b *Buffer) decodeNum() (int64, bool) {
	if b.readPos >= len(b.buf) {
		return 0, false
	}
	zigzag, n := binary.Uvarint(b.buf[b.readPos:])
	if n <= 0 {
		return 0, false
	}
	b.readPos += n
	delta := int64(zigzag>>1) ^ -int64(zigzag&1)
	v := b.last + delta
	b.last = v
	return v, true
}
