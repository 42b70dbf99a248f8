package themescreen

// DefaultTextColumns are the corpus columns searched when neither the
// configuration nor the schema's meta.match_fields names any.
var DefaultTextColumns = []string{"Article Title", "Abstract", "Author Keywords", "Keywords Plus"}

// Config holds all configuration for a screening run.
type Config struct {
	// InputPath is the corpus file (.xlsx, .xls, .csv, .tsv).
	InputPath string `json:"input_path" yaml:"input_path"`

	// SchemaPath is the YAML file defining themes, sub-themes, and keywords.
	SchemaPath string `json:"schema_path" yaml:"schema_path"`

	// OutDir is the directory the three result tables are written to.
	// Created if absent. Defaults to "out".
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// TextColumns are the corpus columns concatenated into each record's
	// search text, in order. When empty, the schema's meta.match_fields is
	// used, falling back to DefaultTextColumns.
	TextColumns []string `json:"text_columns" yaml:"text_columns"`

	// DBPath, when set, additionally persists the run and its result tables
	// to a SQLite database at this path. The CSV files are always written.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// DefaultConfig returns a Config with the standard output directory.
func DefaultConfig() Config {
	return Config{
		OutDir: "out",
	}
}

// resolveTextColumns picks the text columns for a run: explicit config wins,
// then the schema's meta.match_fields, then DefaultTextColumns.
func (c *Config) resolveTextColumns(matchFields []string) []string {
	if len(c.TextColumns) > 0 {
		return c.TextColumns
	}
	if len(matchFields) > 0 {
		return matchFields
	}
	return DefaultTextColumns
}
