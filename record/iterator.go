// iterator.go - local / linked / consuming-linked record iteration over pages
package record

import (
	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/page"
)

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

// ParseSlot parses the record stored at slot i of pg.
func ParseSlot(pg *page.Page, i int, logger *logrus.Logger) (*Record, error) {
	off, err := pg.SlotOffset(i)
	if err != nil {
		return nil, err
	}
	isIndex := pg.Header.Type == page.TypeIndex
	return Parse(pg.Data, int(off), isIndex, pg.Header.PMinLen)
}

// GetRecordFromProvider implements the get_record convenience operation in
// terms of a plain page.Provider; concrete Provider implementations call
// this from GetRecord to satisfy the full record.Provider contract without duplicating the
// slot-bounds check.
func GetRecordFromProvider(pp page.Provider, rp page.RecordPointer, logger *logrus.Logger) (*Record, bool) {
	pg, ok := pp.Get(rp.Page)
	if !ok {
		return nil, false
	}
	if int(rp.Slot) >= pg.RecordCount() {
		return nil, false
	}
	rec, err := ParseSlot(pg, int(rp.Slot), logger)
	if err != nil {
		logOrDefault(logger).WithError(err).WithField("record", rp).Warn("record: dropped")
		return nil, false
	}
	return rec, true
}

// LocalIterator walks the slot array of a single page, stopping at slot_count.
// Slots that fail to parse are logged and skipped (never fatal).
type LocalIterator struct {
	pg     *page.Page
	idx    int
	logger *logrus.Logger
}

// NewLocalIterator returns an iterator over pg's own slot array only.
func NewLocalIterator(pg *page.Page, logger *logrus.Logger) *LocalIterator {
	return &LocalIterator{pg: pg, logger: logOrDefault(logger)}
}

// Next returns the next decodable record, or ok=false once the page is exhausted.
func (it *LocalIterator) Next() (*Record, bool) {
	for it.idx < it.pg.RecordCount() {
		i := it.idx
		it.idx++
		rec, err := ParseSlot(it.pg, i, it.logger)
		if err != nil {
			it.logger.WithError(err).WithField("slot", i).Warn("record: dropped")
			continue
		}
		return rec, true
	}
	return nil, false
}

// Slot returns the slot index of the record most recently returned by Next.
func (it *LocalIterator) Slot() int { return it.idx - 1 }

// LinkedIterator walks one page locally, then follows Header.Next across
// pages fetched from the Provider, terminating at a null pointer or a
// provider miss.
type LinkedIterator struct {
	provider Provider
	cur      *page.Page
	local    *LocalIterator
	logger   *logrus.Logger
}

// NewLinkedIterator begins a linked scan at start, fetched fresh from provider.
func NewLinkedIterator(provider Provider, start page.Pointer, logger *logrus.Logger) *LinkedIterator {
	logger = logOrDefault(logger)
	pg, ok := provider.Get(start)
	if !ok {
		return &LinkedIterator{provider: provider, logger: logger}
	}
	return NewConsumingLinkedIterator(provider, pg, logger)
}

// NewConsumingLinkedIterator begins a linked scan at an already-fetched page,
// taking ownership of it (the "consuming linked" iterator).
func NewConsumingLinkedIterator(provider Provider, start *page.Page, logger *logrus.Logger) *LinkedIterator {
	logger = logOrDefault(logger)
	it := &LinkedIterator{provider: provider, cur: start, logger: logger}
	if start != nil {
		it.local = NewLocalIterator(start, logger)
	}
	return it
}

// Next returns the next decodable record across the whole linked chain.
func (it *LinkedIterator) Next() (*Record, bool) {
	for {
		if it.local == nil {
			return nil, false
		}
		if rec, ok := it.local.Next(); ok {
			return rec, true
		}
		next := it.cur.Header.Next
		if next.IsNull() {
			it.local = nil
			return nil, false
		}
		pg, ok := it.provider.Get(next)
		if !ok {
			it.local = nil
			return nil, false
		}
		it.cur = pg
		it.local = NewLocalIterator(pg, it.logger)
	}
}
