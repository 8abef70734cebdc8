// file_provider.go - copying page provider: one os.File per data file, read
// via io.ReaderAt (grounded on wilhasse-go-innodb's reader.go PageReader.ReadPage)
package provider

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/wilhasse/go-mdf/format"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/record"
)

func logOrDefault(l *logrus.Logger) *logrus.Logger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

type dataFile struct {
	f        *os.File
	numPages uint32
}

// FileProvider resolves pages by seeking and reading format.PageSize chunks
// from one *os.File per logical data file. Every Get copies into a fresh
// buffer; callers that want zero-copy access should use MMapProvider.
type FileProvider struct {
	files  map[uint16]*dataFile
	ids    []uint16
	logger *logrus.Logger
}

// OpenFileProvider opens path as file_id 1.
func OpenFileProvider(path string, logger *logrus.Logger) (*FileProvider, error) {
	fp := &FileProvider{files: make(map[uint16]*dataFile), logger: logOrDefault(logger)}
	if err := fp.AddFile(1, path); err != nil {
		return nil, err
	}
	return fp, nil
}

// AddFile attaches an additional logical data file under fileID.
func (fp *FileProvider) AddFile(fileID uint16, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("provider: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("provider: stat %s: %w", path, err)
	}
	fp.files[fileID] = &dataFile{f: f, numPages: uint32(info.Size() / format.PageSize)}
	fp.ids = append(fp.ids, fileID)
	sortUint16(fp.ids)
	return nil
}

// Close closes every underlying file.
func (fp *FileProvider) Close() error {
	var first error
	for _, df := range fp.files {
		if err := df.f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (fp *FileProvider) FileIDs() []uint16 { return fp.ids }

func (fp *FileProvider) NumPages(fileID uint16) uint32 {
	df, ok := fp.files[fileID]
	if !ok {
		return 0
	}
	return df.numPages
}

func (fp *FileProvider) Get(ptr page.Pointer) (*page.Page, bool) {
	df, ok := fp.files[ptr.FileID]
	if !ok || ptr.PageID >= df.numPages {
		return nil, false
	}
	buf := make([]byte, format.PageSize)
	off := int64(ptr.PageID) * int64(format.PageSize)
	if _, err := df.f.ReadAt(buf, off); err != nil {
		fp.logger.WithError(err).WithField("ptr", ptr).Warn("provider: read failed")
		return nil, false
	}
	pg, err := page.Parse(buf)
	if err != nil {
		fp.logger.WithError(err).WithField("ptr", ptr).Warn("provider: page parse failed")
		return nil, false
	}
	return pg, true
}

// GetRecord implements record.Provider.
func (fp *FileProvider) GetRecord(rp page.RecordPointer) (*record.Record, bool) {
	return record.GetRecordFromProvider(fp, rp, fp.logger)
}

func sortUint16(xs []uint16) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

var _ record.Provider = (*FileProvider)(nil)
