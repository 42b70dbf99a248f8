package screen

import (
	"reflect"
	"testing"

	"github.com/sarbeswar1986/themescreen/schema"
)

func twoRecordSchema() *schema.Schema {
	return &schema.Schema{
		Themes: []schema.Theme{
			{
				ID:   "T1",
				Name: "Geospatial",
				Subthemes: []schema.Subtheme{
					{ID: "ST1", Name: "Mapping", Keywords: []string{"GIS", "remote sensing"}},
				},
			},
		},
	}
}

// ---------------------------------------------------------------------------
// Screen
// ---------------------------------------------------------------------------

func TestScreen(t *testing.T) {
	paperIDs := []string{"P1", "P2"}
	texts := []string{
		"Remote sensing and GIS mapping",
		"Unrelated study on soil.",
	}

	res := Screen(twoRecordSchema(), paperIDs, texts)

	if len(res.Counts) != 1 {
		t.Fatalf("expected 1 count row, got %d", len(res.Counts))
	}
	c := res.Counts[0]
	if c.PaperCount != 1 {
		t.Errorf("PaperCount = %d, want 1", c.PaperCount)
	}
	if c.KeywordsCount != 2 {
		t.Errorf("KeywordsCount = %d, want 2", c.KeywordsCount)
	}

	if len(res.Hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(res.Hits))
	}
	want := HitRow{PaperID: "P1", ThemeID: "T1", ThemeName: "Geospatial", SubthemeID: "ST1", SubthemeName: "Mapping"}
	if res.Hits[0] != want {
		t.Errorf("Hits[0] = %+v, want %+v", res.Hits[0], want)
	}

	if !reflect.DeepEqual(res.FlagColumns, []string{"ST1__Mapping"}) {
		t.Errorf("FlagColumns = %v, want [ST1__Mapping]", res.FlagColumns)
	}
	wantFlags := [][]bool{{true}, {false}}
	if !reflect.DeepEqual(res.Flags, wantFlags) {
		t.Errorf("Flags = %v, want %v", res.Flags, wantFlags)
	}
}

func TestScreenCountsSorted(t *testing.T) {
	// Schema order T2 before T1; the count table is still sorted by
	// (theme_id, subtheme_id) while hits keep schema order.
	s := &schema.Schema{
		Themes: []schema.Theme{
			{
				ID:   "T2",
				Name: "Later",
				Subthemes: []schema.Subtheme{
					{ID: "T2.2", Name: "B", Keywords: []string{"beta"}},
					{ID: "T2.1", Name: "A", Keywords: []string{"alpha"}},
				},
			},
			{
				ID:   "T1",
				Name: "Earlier",
				Subthemes: []schema.Subtheme{
					{ID: "T1.1", Name: "C", Keywords: []string{"gamma"}},
				},
			},
		},
	}

	res := Screen(s, []string{"P1"}, []string{"alpha beta gamma"})

	gotIDs := make([]string, len(res.Counts))
	for i, c := range res.Counts {
		gotIDs[i] = c.SubthemeID
	}
	if !reflect.DeepEqual(gotIDs, []string{"T1.1", "T2.1", "T2.2"}) {
		t.Errorf("sorted count order = %v, want [T1.1 T2.1 T2.2]", gotIDs)
	}

	hitIDs := make([]string, len(res.Hits))
	for i, h := range res.Hits {
		hitIDs[i] = h.SubthemeID
	}
	if !reflect.DeepEqual(hitIDs, []string{"T2.2", "T2.1", "T1.1"}) {
		t.Errorf("hit order = %v, want schema order [T2.2 T2.1 T1.1]", hitIDs)
	}

	// Flag columns also keep schema order.
	if !reflect.DeepEqual(res.FlagColumns, []string{"T2.2__B", "T2.1__A", "T1.1__C"}) {
		t.Errorf("FlagColumns = %v, want schema order", res.FlagColumns)
	}
}

func TestScreenHitsRecordOrder(t *testing.T) {
	// Hits for one sub-theme follow the corpus row order.
	s := twoRecordSchema()
	paperIDs := []string{"P1", "P2", "P3"}
	texts := []string{"GIS one", "no match", "GIS three"}

	res := Screen(s, paperIDs, texts)

	if len(res.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(res.Hits))
	}
	if res.Hits[0].PaperID != "P1" || res.Hits[1].PaperID != "P3" {
		t.Errorf("hit paper order = [%s %s], want [P1 P3]", res.Hits[0].PaperID, res.Hits[1].PaperID)
	}
}

func TestScreenZeroMatchSubtheme(t *testing.T) {
	// A sub-theme nothing matches still yields a count row and flag column.
	s := &schema.Schema{
		Themes: []schema.Theme{
			{
				ID:   "T1",
				Name: "Theme",
				Subthemes: []schema.Subtheme{
					{ID: "T1.1", Name: "Hit", Keywords: []string{"GIS"}},
					{ID: "T1.2", Name: "Silent", Keywords: []string{"zzz-nothing"}},
					{ID: "T1.3", Name: "Empty", Keywords: []string{}},
				},
			},
		},
	}

	res := Screen(s, []string{"P1"}, []string{"a GIS paper"})

	if len(res.Counts) != 3 {
		t.Fatalf("expected 3 count rows, got %d", len(res.Counts))
	}
	for _, c := range res.Counts {
		switch c.SubthemeID {
		case "T1.1":
			if c.PaperCount != 1 {
				t.Errorf("T1.1 PaperCount = %d, want 1", c.PaperCount)
			}
		case "T1.2", "T1.3":
			if c.PaperCount != 0 {
				t.Errorf("%s PaperCount = %d, want 0", c.SubthemeID, c.PaperCount)
			}
		}
	}

	if len(res.FlagColumns) != 3 {
		t.Errorf("FlagColumns = %v, want 3 columns", res.FlagColumns)
	}
	if !reflect.DeepEqual(res.Flags[0], []bool{true, false, false}) {
		t.Errorf("Flags[0] = %v, want [true false false]", res.Flags[0])
	}
}

func TestScreenMultipleSubthemesPerRecord(t *testing.T) {
	// A record matching k sub-themes produces k hit rows.
	s := &schema.Schema{
		Themes: []schema.Theme{
			{
				ID:   "T1",
				Name: "Theme",
				Subthemes: []schema.Subtheme{
					{ID: "T1.1", Name: "A", Keywords: []string{"urban"}},
					{ID: "T1.2", Name: "B", Keywords: []string{"sensing"}},
				},
			},
		},
	}

	res := Screen(s, []string{"P1"}, []string{"urban sensing"})

	if len(res.Hits) != 2 {
		t.Fatalf("expected 2 hits for one record, got %d", len(res.Hits))
	}
	if !reflect.DeepEqual(res.Flags[0], []bool{true, true}) {
		t.Errorf("Flags[0] = %v, want [true true]", res.Flags[0])
	}
}

func TestScreenNoRecords(t *testing.T) {
	res := Screen(twoRecordSchema(), nil, nil)

	if len(res.Counts) != 1 || res.Counts[0].PaperCount != 0 {
		t.Errorf("Counts = %+v, want one zero-count row", res.Counts)
	}
	if len(res.Hits) != 0 {
		t.Errorf("expected no hits, got %d", len(res.Hits))
	}
	if len(res.Flags) != 0 {
		t.Errorf("expected no flag rows, got %d", len(res.Flags))
	}
}

func TestScreenEmptySchema(t *testing.T) {
	s := &schema.Schema{Themes: []schema.Theme{}}
	res := Screen(s, []string{"P1"}, []string{"text"})

	if len(res.Counts) != 0 || len(res.Hits) != 0 || len(res.FlagColumns) != 0 {
		t.Errorf("expected empty result tables, got %+v", res)
	}
	if len(res.Flags) != 1 || len(res.Flags[0]) != 0 {
		t.Errorf("Flags = %v, want one empty row", res.Flags)
	}
}
