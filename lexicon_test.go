package annotator

import (
	"os"
	"path/filepath"
	"testing"
)

// writeLexicon writes content to a temp file and returns its path.
func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lemmas.de.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewLexiconEngine(t *testing.T) {
	path := writeLexicon(t, "! German test lexicon\n"+
		"häuser\thaus\n"+
		"\n"+
		"ging\tgehen\n"+
		"Bücher\tbuch\n"+
		"morgen\tmorgen,Morgen\n")

	eng, err := NewLexiconEngine(path)
	if err != nil {
		t.Fatalf("NewLexiconEngine: %v", err)
	}
	if eng.Name() != "lexicon" {
		t.Errorf("Name = %q", eng.Name())
	}
	if eng.Len() != 4 {
		t.Errorf("Len = %d, want 4", eng.Len())
	}

	tests := []struct {
		word string
		want []string
	}{
		{"häuser", []string{"haus"}},
		{"GING", []string{"gehen"}},   // lookup is case-folded
		{"bücher", []string{"buch"}},  // keys lowercased on load
		{"morgen", []string{"morgen", "Morgen"}}, // candidates in file order
		{"unbekannt", nil},
	}
	for _, tt := range tests {
		got, err := eng.Lemmas(tt.word)
		if err != nil {
			t.Errorf("Lemmas(%q): %v", tt.word, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Lemmas(%q) = %v, want %v", tt.word, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Lemmas(%q)[%d] = %q, want %q", tt.word, i, got[i], tt.want[i])
			}
		}
	}
}

func TestNewLexiconEngineMissingFile(t *testing.T) {
	if _, err := NewLexiconEngine(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Fatal("want error for missing lexicon file")
	}
}

func TestNewLexiconEngineMissingTab(t *testing.T) {
	path := writeLexicon(t, "häuser haus\n")
	if _, err := NewLexiconEngine(path); err == nil {
		t.Fatal("want error for line without tab separator")
	}
}
