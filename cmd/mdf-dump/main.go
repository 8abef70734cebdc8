// mdf-dump - general page/catalog/table dumper for offline MDF databases.
// Flag layout follows wilhasse-go-innodb's cmd/go-innodb tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/wilhasse/go-mdf/catalog"
	"github.com/wilhasse/go-mdf/page"
	"github.com/wilhasse/go-mdf/provider"
	"github.com/wilhasse/go-mdf/record"
	"github.com/wilhasse/go-mdf/schema"
	"github.com/wilhasse/go-mdf/table"
)

func main() {
	var (
		file      = flag.String("file", "", "Path to the primary .mdf data file (required)")
		ndf       = flag.String("ndf", "", "Comma-separated list of additional .ndf files, assigned file_id 2,3,...")
		useMMap   = flag.Bool("mmap", false, "Map files with mmap instead of copying reads")
		dumpPage  = flag.String("dump-page", "", "Dump a single page header, as fileID:pageID")
		tableName = flag.String("table", "", "Table name to scan (sys.schobjs.name, catalog mode)")
		sqlFile   = flag.String("sql", "", "CREATE TABLE file overriding the catalog schema")
		entry     = flag.String("entry", "", "Partition entry page for -sql mode, as fileID:pageID")
		degraded  = flag.Bool("degraded", false, "Use the degraded whole-file scan instead of the linked chain")
		format    = flag.String("format", "text", "Output format: text or json")
		maxRows   = flag.Int("max-rows", 1000, "Maximum rows to display")
		verbose   = flag.Bool("v", false, "Verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "MDF page/table dumper\n\nUsage: %s -file db.mdf [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.StandardLogger()
	if *verbose {
		logger.SetLevel(logrus.TraceLevel)
	}
	if lvl := os.Getenv("MDF_LOG_LEVEL"); lvl != "" {
		if parsed, err := logrus.ParseLevel(lvl); err == nil {
			logger.SetLevel(parsed)
		}
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	prov, closeFn, err := openProvider(*file, *ndf, *useMMap, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening provider: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()

	if *dumpPage != "" {
		dumpOnePage(prov, *dumpPage)
		return
	}

	var tb *table.Table
	switch {
	case *sqlFile != "":
		tb, err = openOverrideTable(prov, *sqlFile, *entry, *tableName, logger)
	case *tableName != "":
		tb, err = openCatalogTable(prov, *tableName, logger)
	default:
		fmt.Fprintln(os.Stderr, "Error: one of -table or -sql is required")
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving table: %v\n", err)
		os.Exit(1)
	}

	rows := collectRows(tb, *degraded, *maxRows)
	switch *format {
	case "json":
		printRowsJSON(tb, rows)
	default:
		printRowsText(tb, rows)
	}
}

func openProvider(file, ndfList string, useMMap bool, logger *logrus.Logger) (record.Provider, func() error, error) {
	var extra []string
	if ndfList != "" {
		extra = strings.Split(ndfList, ",")
	}

	if useMMap {
		mp, err := provider.OpenMMapProvider(file, logger)
		if err != nil {
			return nil, nil, err
		}
		for i, path := range extra {
			if err := mp.AddFile(uint16(i+2), path); err != nil {
				return nil, nil, err
			}
		}
		return mp, mp.Close, nil
	}

	fp, err := provider.OpenFileProvider(file, logger)
	if err != nil {
		return nil, nil, err
	}
	for i, path := range extra {
		if err := fp.AddFile(uint16(i+2), path); err != nil {
			return nil, nil, err
		}
	}
	return fp, fp.Close, nil
}

func parsePointer(s string) (page.Pointer, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return page.Pointer{}, fmt.Errorf("expected fileID:pageID, got %q", s)
	}
	fileID, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return page.Pointer{}, err
	}
	pageID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return page.Pointer{}, err
	}
	return page.Pointer{FileID: uint16(fileID), PageID: uint32(pageID)}, nil
}

func dumpOnePage(prov record.Provider, spec string) {
	ptr, err := parsePointer(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pg, ok := prov.Get(ptr)
	if !ok {
		fmt.Fprintf(os.Stderr, "page %s not found\n", ptr)
		os.Exit(1)
	}
	h := pg.Header
	fmt.Printf("Page %s\n", ptr)
	fmt.Printf("  Type:       %s (%d)\n", h.Type, h.Type)
	fmt.Printf("  Level:      %d\n", h.Level)
	fmt.Printf("  IndexID:    %d\n", h.IndexID)
	fmt.Printf("  ObjectID:   %d\n", h.ObjectID)
	fmt.Printf("  PMinLen:    %d\n", h.PMinLen)
	fmt.Printf("  SlotCount:  %d\n", h.SlotCount)
	fmt.Printf("  Prev:       %s\n", h.Prev)
	fmt.Printf("  Next:       %s\n", h.Next)
}

func openCatalogTable(prov record.Provider, name string, logger *logrus.Logger) (*table.Table, error) {
	cat, err := catalog.Bootstrap(prov, logger)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	for _, t := range cat.Tables() {
		if strings.EqualFold(t.Name, name) {
			return table.Open(cat, t, prov, logger)
		}
	}
	return nil, fmt.Errorf("table %q not found in catalog", name)
}

func openOverrideTable(prov record.Provider, sqlFile, entrySpec, name string, logger *logrus.Logger) (*table.Table, error) {
	raw, err := os.ReadFile(sqlFile)
	if err != nil {
		return nil, err
	}
	sch, err := schema.ParseOverrideFromSQL(string(raw))
	if err != nil {
		return nil, err
	}
	if entrySpec == "" {
		return nil, fmt.Errorf("-entry is required alongside -sql")
	}
	entryPtr, err := parsePointer(entrySpec)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "override"
	}
	return table.OpenWithSchema(name, sch, []page.Pointer{entryPtr}, prov, logger), nil
}

func collectRows(tb *table.Table, degraded bool, max int) []schema.Row {
	var rows []schema.Row
	if degraded {
		scanner, ok := tb.ScanDB()
		if !ok {
			return nil
		}
		for len(rows) < max {
			row, ok := scanner.Next()
			if !ok {
				break
			}
			rows = append(rows, row)
		}
		return rows
	}

	it := tb.Rows()
	for len(rows) < max {
		row, ok := it.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func printRowsText(tb *table.Table, rows []schema.Row) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\t")
	for _, c := range tb.Schema.Columns {
		fmt.Fprintf(w, "%s\t", c.Name)
	}
	fmt.Fprintln(w)
	for i, row := range rows {
		fmt.Fprintf(w, "%d\t", i)
		for _, v := range row {
			fmt.Fprintf(w, "%s\t", v.String())
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func printRowsJSON(tb *table.Table, rows []schema.Row) {
	type jsonRow map[string]interface{}
	out := make([]jsonRow, 0, len(rows))
	for _, row := range rows {
		jr := make(jsonRow, len(row))
		for i, v := range row {
			if i >= len(tb.Schema.Columns) {
				continue
			}
			jr[tb.Schema.Columns[i].Name] = v
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
