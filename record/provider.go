// provider.go - the Page Provider contract as consumed by record-level callers
package record

import "github.com/wilhasse/go-mdf/page"

// Provider is the full external contract the core consumes: raw page bytes
// by Pointer, plus the convenience get_record lookup. Implementations own
// any caching and must tolerate reentrant/overlapping calls.
type Provider interface {
	page.Provider

	// GetRecord resolves a RecordPointer to a parsed Record, or ok=false if
	// the page is missing or Slot exceeds the page's slot count.
	GetRecord(rp page.RecordPointer) (rec *Record, ok bool)
}
