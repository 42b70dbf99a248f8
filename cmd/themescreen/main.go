// Command themescreen counts bibliographic records by theme and sub-theme
// keyword matches and writes the three result tables as CSV.
//
// Usage:
//
//	themescreen --input corpus.xlsx --schema config/schema.yaml --outdir out
//
// The searched columns default to the schema's meta.match_fields, falling
// back to "Article Title, Abstract, Author Keywords, Keywords Plus"; override
// them with --text-cols. Pass --db to additionally persist the run to SQLite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/sarbeswar1986/themescreen"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to the corpus file (.xlsx, .xls, .csv, .tsv)")
		schemaPath = flag.String("schema", "", "Path to the schema YAML defining themes/subthemes/keywords")
		outdir     = flag.String("outdir", "out", "Output directory, created if missing")
		textCols   = flag.String("text-cols", "", "Comma-separated text columns to search (default: schema meta.match_fields)")
		dbPath     = flag.String("db", "", "Optional SQLite database to persist run results")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input flag is required")
	}
	if *schemaPath == "" {
		log.Fatal("--schema flag is required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := themescreen.DefaultConfig()
	cfg.InputPath = *input
	cfg.SchemaPath = *schemaPath
	cfg.OutDir = *outdir
	cfg.DBPath = *dbPath
	for _, c := range strings.Split(*textCols, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cfg.TextColumns = append(cfg.TextColumns, c)
		}
	}

	rep, err := themescreen.Run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("screening failed: %v", err)
	}

	fmt.Println("Wrote:")
	for _, p := range rep.OutputPaths {
		fmt.Println(" -", p)
	}
}
