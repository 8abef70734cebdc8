// mdf-pminlen - prints every table's partition p_min_len, then every
// Data/Index page's header annotated with the table that p_min_len maps
// to, following original_source/examples/p_min_len_dumper.rs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/wilhasse/go-mdf/catalog"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/provider"
	"github.com/wilhasse/go-mdf/table"
)

func main() {
	file := flag.String("file", "", "Path to the primary .mdf data file (required)")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		os.Exit(1)
	}

	logger := logrus.StandardLogger()
	logger.SetLevel(logrus.ErrorLevel)

	prov, err := provider.OpenFileProvider(*file, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer prov.Close()

	cat, err := catalog.Bootstrap(prov, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error bootstrapping catalog: %v\n", err)
		os.Exit(1)
	}

	pMinInfo := make(map[uint16]string)
	for _, schObj := range cat.Tables() {
		tb, err := table.Open(cat, schObj, prov, logger)
		if err != nil || len(tb.Partitions) == 0 {
			fmt.Printf("######### %s\nNOTHING!!!\n", schObj.Name)
			continue
		}
		firstPage, ok := prov.Get(tb.Partitions[0])
		if !ok {
			fmt.Printf("######### %s\nNOTHING!!!\n", schObj.Name)
			continue
		}
		fmt.Printf("########## %s\n%+v\n", schObj.Name, firstPage.Header)
		pMinInfo[firstPage.Header.PMinLen] = schObj.Name
	}

	for _, fileID := range prov.FileIDs() {
		n := prov.NumPages(fileID)
		for pageID := uint32(0); pageID < n; pageID++ {
			pg, ok := prov.Get(page.Pointer{FileID: fileID, PageID: pageID})
			if !ok {
				continue
			}
			if pg.Header.Type != page.TypeData && pg.Header.Type != page.TypeIndex {
				continue
			}
			name, known := pMinInfo[pg.Header.PMinLen]
			if !known {
				name = "?"
			}
			fmt.Printf("######### %s\n%+v\n", name, pg.Header)
		}
	}
}
