// mdf-lobdump - rebuilds or loads the persisted LOB-root index and dumps
// every orphan blob to its own file, following original_source/examples/lob_dumper.rs.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/wilhasse/go-mdf/lob"
	"github.com/wilhasse/go-mdf/provider"
	"github.com/wilhasse/go-mdf/record"
)

func main() {
	var (
		file    = flag.String("file", "", "Path to the primary .mdf data file (required)")
		idxPath = flag.String("index", "large_root_yukon.idx", "Persisted root-index path")
		outDir  = flag.String("out", "lob_dump", "Directory to write recovered blobs into")
	)
	flag.Parse()

	logger := logrus.StandardLogger()
	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		os.Exit(1)
	}

	prov, err := provider.OpenFileProvider(*file, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer prov.Close()

	idx, err := loadOrDiscoverIndex(prov, *idxPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building root index: %v\n", err)
		os.Exit(1)
	}

	real := lob.ComputeRealRoots(idx)
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	i := 0
	for key := range real {
		root := idx[key]
		blocks, err := dumpRoot(prov, root)
		if err != nil {
			logger.WithError(err).WithField("root", key).Warn("mdf-lobdump: skipping unreadable root")
			continue
		}
		path := filepath.Join(*outDir, fmt.Sprintf("%d", i))
		i++
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", path, err)
			continue
		}
		fmt.Printf("dumping %s\n", path)
		_, err = blocks.WriteTo(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		}
	}
}

// loadOrDiscoverIndex matches lob_dumper.rs exactly: if the persisted index
// already exists on disk, trust it and load it; otherwise discover it by
// scanning every TextMix/TextTree page and persist the result for next time.
func loadOrDiscoverIndex(prov record.Provider, idxPath string, logger *logrus.Logger) (lob.RootIndex, error) {
	if _, err := os.Stat(idxPath); err == nil {
		f, err := os.Open(idxPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return lob.LoadRootIndex(f)
	}

	idx := lob.DiscoverRoots(prov, logger)
	f, err := os.Create(idxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := idx.Save(f); err != nil {
		return nil, err
	}
	return idx, nil
}

// dumpRoot resolves a root's immediate children (already known from the
// index) and walks each one down to its data leaves, mirroring the nested
// sub_entries loop in lob_dumper.rs instead of lob.Read's single-pointer
// entry point (the index already did the root lookup).
func dumpRoot(prov record.Provider, root lob.RootEntry) (*lob.DataBlocks, error) {
	var out lob.DataBlocks
	for _, child := range root.Children {
		rec, ok := prov.GetRecord(child)
		if !ok {
			return nil, fmt.Errorf("unresolved child %s", child)
		}
		entry, err := lob.Parse(rec)
		if err != nil {
			return nil, err
		}
		blocks, err := lob.WalkEntry(prov, entry)
		if err != nil {
			return nil, err
		}
		out.Extents = append(out.Extents, blocks.Extents...)
	}
	return &out, nil
}
