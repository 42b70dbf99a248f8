// Package themescreen screens a corpus of bibliographic records against a
// hierarchy of themes and sub-themes, each defined by a literal keyword
// list, and produces match counts and per-paper flags.
package themescreen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/sarbeswar1986/themescreen/corpus"
	"github.com/sarbeswar1986/themescreen/report"
	"github.com/sarbeswar1986/themescreen/schema"
	"github.com/sarbeswar1986/themescreen/screen"
	"github.com/sarbeswar1986/themescreen/store"
)

// Report summarizes one completed screening run.
type Report struct {
	Records          int           `json:"records"`
	Themes           int           `json:"themes"`
	Subthemes        int           `json:"subthemes"`
	Hits             int           `json:"hits"`
	IdentifierColumn string        `json:"identifier_column"`
	TextColumns      []string      `json:"text_columns"`
	OutputPaths      []string      `json:"output_paths"`
	RunID            string        `json:"run_id,omitempty"`
	Elapsed          time.Duration `json:"elapsed"`
}

// Run executes one screening pass: load the schema and corpus, resolve the
// record identifier, build per-record search text, match every sub-theme,
// and write the three result tables. All failures abort before any output
// file is written.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	start := time.Now()

	if cfg.OutDir == "" {
		cfg.OutDir = "out"
	}

	sch, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	slog.Info("screen: schema loaded",
		"file", filepath.Base(cfg.SchemaPath),
		"themes", len(sch.Themes), "subthemes", sch.NumSubthemes())

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(cfg.InputPath), "."))
	reader, err := corpus.NewRegistry().Get(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	loadStart := time.Now()
	table, err := reader.Read(ctx, cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnreadable, err)
	}
	slog.Info("screen: corpus loaded",
		"file", filepath.Base(cfg.InputPath), "format", format,
		"records", len(table.Rows), "columns", len(table.Columns),
		"elapsed", time.Since(loadStart).Round(time.Millisecond))

	idColumn := corpus.ResolveIdentifier(table)
	paperIDs, _ := table.Column(idColumn)

	textColumns := cfg.resolveTextColumns(sch.Meta.MatchFields)
	texts, err := corpus.BuildSearchText(table, textColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrColumnsMissing, err)
	}

	matchStart := time.Now()
	result := screen.Screen(sch, paperIDs, texts)
	slog.Info("screen: matching complete",
		"records", len(texts), "subthemes", len(result.Counts),
		"hits", len(result.Hits),
		"elapsed", time.Since(matchStart).Round(time.Millisecond))

	paths, err := report.Write(cfg.OutDir, result)
	if err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}

	rep := &Report{
		Records:          len(table.Rows),
		Themes:           len(sch.Themes),
		Subthemes:        sch.NumSubthemes(),
		Hits:             len(result.Hits),
		IdentifierColumn: idColumn,
		TextColumns:      textColumns,
		OutputPaths:      paths,
	}

	if cfg.DBPath != "" {
		runID, err := saveRun(ctx, cfg, textColumns, result)
		if err != nil {
			return nil, fmt.Errorf("persisting run: %w", err)
		}
		rep.RunID = runID
		slog.Info("screen: run persisted", "db", cfg.DBPath, "run_id", runID)
	}

	rep.Elapsed = time.Since(start)
	slog.Info("screen: run complete",
		"records", rep.Records, "hits", rep.Hits,
		"identifier", idColumn,
		"elapsed", rep.Elapsed.Round(time.Millisecond))
	return rep, nil
}

// saveRun maps the screening result into the store's row types and persists
// it under a fresh run ID.
func saveRun(ctx context.Context, cfg Config, textColumns []string, result *screen.Result) (string, error) {
	st, err := store.New(cfg.DBPath)
	if err != nil {
		return "", err
	}
	defer st.Close()

	counts := make([]store.CountRow, len(result.Counts))
	for i, c := range result.Counts {
		counts[i] = store.CountRow{
			ThemeID:       c.ThemeID,
			ThemeName:     c.ThemeName,
			SubthemeID:    c.SubthemeID,
			SubthemeName:  c.SubthemeName,
			PaperCount:    c.PaperCount,
			KeywordsCount: c.KeywordsCount,
		}
	}

	hits := make([]store.HitRow, len(result.Hits))
	for i, h := range result.Hits {
		hits[i] = store.HitRow{
			PaperID:      h.PaperID,
			ThemeID:      h.ThemeID,
			ThemeName:    h.ThemeName,
			SubthemeID:   h.SubthemeID,
			SubthemeName: h.SubthemeName,
		}
	}

	flags := make([]store.FlagRow, 0, len(result.Flags)*len(result.FlagColumns))
	for i, row := range result.Flags {
		for j, matched := range row {
			flags = append(flags, store.FlagRow{
				PaperID:  result.PaperIDs[i],
				Subtheme: result.FlagColumns[j],
				Matched:  matched,
			})
		}
	}

	run := store.Run{
		InputPath:     cfg.InputPath,
		SchemaPath:    cfg.SchemaPath,
		TextColumns:   strings.Join(textColumns, ","),
		RecordCount:   len(result.PaperIDs),
		SubthemeCount: len(result.Counts),
		HitCount:      len(result.Hits),
	}
	return st.SaveRun(ctx, run, counts, hits, flags)
}
