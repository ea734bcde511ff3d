package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"greg-hacke/keyence-meta/formats"
	"greg-hacke/keyence-meta/meta"
)

func main() {
	// Parse command line flags
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <tiff-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extract and display Keyence microscope metadata from TIFF files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	outputFormat := flag.String("o", "table", "Output format: table, json or yaml")
	outputFile := flag.String("f", "", "Optional output file path (default: stdout)")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Check arguments
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	filePath := flag.Arg(0)

	// Open file
	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Read entire file into memory; the metadata block can sit anywhere
	// in the payload.
	data, err := io.ReadAll(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("read file", "path", filePath, "bytes", len(data))

	if !formats.SniffTIFF(data) {
		logger.Warn("no TIFF header at start of file, scanning anyway", "path", filePath)
	}

	// Resolve text encoding; this is the only per-file failure that
	// aborts the run.
	content, encName, err := formats.DecodeText(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding file: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("resolved text encoding", "encoding", encName)

	record := meta.Extract(content)
	present := 0
	for _, f := range record.Fields() {
		if f.Present {
			present++
		}
	}
	logger.Debug("extracted metadata", "fields", record.Len(), "present", present)

	output, err := render(record, *outputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Metadata written to %s\n", *outputFile)
		return
	}
	fmt.Print(output)
}

// render formats the record in the requested output format.
func render(record *meta.Record, format string) (string, error) {
	switch format {
	case "table":
		return renderTable(record), nil
	case "json":
		return record.ToJSON()
	case "yaml":
		return record.ToYAML()
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

// renderTable builds the two-column Parameter/Value listing. Absent fields
// are left out of the display; decoded doubles carry a "*" on their name.
func renderTable(record *meta.Record) string {
	var buf strings.Builder

	rows := 0
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Parameter", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, f := range record.Fields() {
		if !f.Present {
			continue
		}
		name := f.Key
		if f.Double {
			name += "*"
		}
		table.Append([]string{name, meta.FormatField(f)})
		rows++
	}

	if rows == 0 {
		return "No metadata found.\n"
	}

	out := "* Indicates an IEEE 754 double-precision value that has been converted.\n"
	table.Render()
	return out + buf.String()
}
