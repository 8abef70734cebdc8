// scan.go - linked scan and degraded whole-file scan
package table

import (
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/schema"
)

// RowIterator yields bound rows in partition order, then slot order within
// each partition's linked page chain.
type RowIterator struct {
	tb      *Table
	partIdx int
	linked  *record.LinkedIterator
}

// Rows performs the non-degraded "trust the catalog" scan: one linked
// iterator per partition entry page, in partition order.
func (tb *Table) Rows() *RowIterator {
	return &RowIterator{tb: tb, partIdx: -1}
}

// Next binds and returns the next row, or ok=false once every partition's
// chain is exhausted. Rows that fail to bind are logged and skipped, never
// fatal.
func (it *RowIterator) Next() (schema.Row, bool) {
	for {
		if it.linked == nil {
			it.partIdx++
			if it.partIdx >= len(it.tb.Partitions) {
				return nil, false
			}
			it.linked = record.NewLinkedIterator(it.tb.provider, it.tb.Partitions[it.partIdx], it.tb.logger)
		}

		rec, ok := it.linked.Next()
		if !ok {
			it.linked = nil
			continue
		}

		row, err := schema.BindRow(it.tb.Schema, rec, it.tb.logger)
		if err != nil {
			it.tb.logger.WithError(err).Warn("table: dropping unbindable row")
			continue
		}
		return row, true
	}
}

// DegradedScanner walks every Data page in file/page order regardless of
// the linked-list pointers, matching rows purely by p_min_len. Used when
// the forward/previous page chain is broken.
type DegradedScanner struct {
	tb      *Table
	pMinLen uint16
	fileIdx int
	fileIDs []uint16
	pageID  uint32
	local   *record.LocalIterator
}

// ScanDB starts a degraded scan across every file the Provider knows about.
// It returns ok=false if the table has no partition to learn p_min_len from.
func (tb *Table) ScanDB() (*DegradedScanner, bool) {
	return tb.ScanDBFrom(0)
}

// ScanDBFrom starts a degraded scan beginning at the given file index within
// provider.FileIDs(), useful for resuming a scan or skipping a known-bad file.
func (tb *Table) ScanDBFrom(startFileIdx int) (*DegradedScanner, bool) {
	if len(tb.Partitions) == 0 {
		tb.logger.WithError(ErrNoPartitions).WithField("table", tb.Name).Warn("table: cannot start degraded scan")
		return nil, false
	}
	entry, ok := tb.provider.Get(tb.Partitions[0])
	if !ok {
		return nil, false
	}
	return &DegradedScanner{
		tb:      tb,
		pMinLen: entry.Header.PMinLen,
		fileIDs: tb.provider.FileIDs(),
		fileIdx: startFileIdx,
	}, true
}

// Next returns the next bound row found by degraded scan, in
// (file_id, page_id, slot) order.
func (s *DegradedScanner) Next() (schema.Row, bool) {
	for {
		if s.local == nil {
			if !s.advancePage() {
				return nil, false
			}
			continue
		}

		rec, ok := s.local.Next()
		if !ok {
			s.local = nil
			continue
		}

		row, err := schema.BindRow(s.tb.Schema, rec, s.tb.logger)
		if err != nil {
			s.tb.logger.WithError(err).Warn("table: dropping unbindable degraded-scan row")
			continue
		}
		return row, true
	}
}

// advancePage finds the next Data page whose p_min_len matches and loads a
// LocalIterator over it, skipping files/pages that don't match. Returns
// false once every file is exhausted.
func (s *DegradedScanner) advancePage() bool {
	for s.fileIdx < len(s.fileIDs) {
		fileID := s.fileIDs[s.fileIdx]
		n := s.tb.provider.NumPages(fileID)
		for s.pageID < n {
			ptr := page.Pointer{FileID: fileID, PageID: s.pageID}
			s.pageID++
			pg, ok := s.tb.provider.Get(ptr)
			if !ok {
				continue
			}
			if pg.Header.Type != page.TypeData || pg.Header.PMinLen != s.pMinLen {
				continue
			}
			s.local = record.NewLocalIterator(pg, s.tb.logger)
			return true
		}
		s.fileIdx++
		s.pageID = 0
	}
	return false
}
