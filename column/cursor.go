// cursor.go - the fixed-data byte cursor and the persistent bit cursor
package column

import "github.com/wilhasse/go-mdf/format"

// Cursor walks a record's fixed-data slice left to right, tracking position
// for the sequence of typed reads a Schema performs.
type Cursor struct {
	data []byte
	pos  int
}

func NewCursor(data []byte) *Cursor { return &Cursor{data: data} }

func (c *Cursor) Pos() int { return c.pos }

// Take advances past n bytes and returns them.
func (c *Cursor) Take(n int) ([]byte, error) {
	s, err := format.Slice(c.data, c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return s, nil
}

func (c *Cursor) TakeU8() (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) TakeU16() (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return format.Le16(b, 0)
}

func (c *Cursor) TakeU32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return format.Le32(b, 0)
}

func (c *Cursor) TakeU64() (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return format.Le64(b, 0)
}

// BitCursor consumes packed boolean bits LSB-first from the same fixed-data
// cursor, lazily pulling a fresh byte from it whenever the current one is
// exhausted. It must outlive a single record's Bit columns (persistent
// across calls within one row).
type BitCursor struct {
	cur      *Cursor
	byteVal  byte
	consumed int // bits consumed from byteVal so far; 8 means "need a new byte"
}

func NewBitCursor(cur *Cursor) *BitCursor {
	return &BitCursor{cur: cur, consumed: 8}
}

// Next returns the next bit value, LSB-first.
func (b *BitCursor) Next() (bool, error) {
	if b.consumed >= 8 {
		v, err := b.cur.TakeU8()
		if err != nil {
			return false, err
		}
		b.byteVal = v
		b.consumed = 0
	}
	bit := b.byteVal&(1<<uint(b.consumed)) != 0
	b.consumed++
	return bit, nil
}
