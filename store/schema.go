package store

// schemaSQL is the DDL for all tables. Result rows cascade with their run.
const schemaSQL = `
-- One row per completed screening pass
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    input_path TEXT NOT NULL,
    schema_path TEXT NOT NULL,
    text_columns TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    subtheme_count INTEGER NOT NULL,
    hit_count INTEGER NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Per-sub-theme summary, stored in the count table's sorted order
CREATE TABLE IF NOT EXISTS subtheme_counts (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    theme_id TEXT NOT NULL,
    theme_name TEXT NOT NULL,
    subtheme_id TEXT NOT NULL,
    subtheme_name TEXT NOT NULL,
    paper_count INTEGER NOT NULL,
    keywords_count INTEGER NOT NULL
);

-- One row per (record, sub-theme) match
CREATE TABLE IF NOT EXISTS subtheme_hits (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    paper_id TEXT NOT NULL,
    theme_id TEXT NOT NULL,
    theme_name TEXT NOT NULL,
    subtheme_id TEXT NOT NULL,
    subtheme_name TEXT NOT NULL
);

-- Wide flags table unpivoted to one row per (record, sub-theme label)
CREATE TABLE IF NOT EXISTS paper_flags (
    run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    paper_id TEXT NOT NULL,
    subtheme TEXT NOT NULL,
    matched INTEGER NOT NULL
);

-- Indexes
CREATE INDEX IF NOT EXISTS idx_counts_run ON subtheme_counts(run_id);
CREATE INDEX IF NOT EXISTS idx_hits_run ON subtheme_hits(run_id);
CREATE INDEX IF NOT EXISTS idx_hits_subtheme ON subtheme_hits(run_id, subtheme_id);
CREATE INDEX IF NOT EXISTS idx_flags_run ON paper_flags(run_id);
CREATE INDEX IF NOT EXISTS idx_flags_paper ON paper_flags(run_id, paper_id);
`
