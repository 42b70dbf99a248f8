package themescreen

import "errors"

var (
	// ErrSchemaInvalid is returned when the schema file is missing,
	// unparseable, or fails validation.
	ErrSchemaInvalid = errors.New("themescreen: invalid schema")

	// ErrUnsupportedFormat is returned for unrecognized corpus file formats.
	ErrUnsupportedFormat = errors.New("themescreen: unsupported corpus format")

	// ErrCorpusUnreadable is returned when the corpus file cannot be read
	// as tabular data.
	ErrCorpusUnreadable = errors.New("themescreen: corpus unreadable")

	// ErrColumnsMissing is returned when configured text columns are absent
	// from the corpus.
	ErrColumnsMissing = errors.New("themescreen: text columns missing")
)
