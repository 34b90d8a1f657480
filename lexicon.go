package annotator

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LexiconEngine is a LemmaEngine backed by a form→lemma table loaded from
// a file at startup. The table is read-only after loading, so the engine
// is safe for any number of sequential requests.
type LexiconEngine struct {
	name string

	// lemmas maps a lowercased form to its candidate lemmas in file order.
	lemmas map[string][]string
}

// NewLexiconEngine loads a lemma table from path.
//
// File format, one entry per line:
//
//	form<TAB>lemma[,lemma...]
//
// Lines starting with "!" are comments; blank lines are skipped. Forms are
// lowercased on load. A form listed on several lines accumulates
// candidates in file order.
func NewLexiconEngine(path string) (*LexiconEngine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	e := &LexiconEngine{
		name:   "lexicon",
		lemmas: make(map[string][]string),
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		form, rest, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon %s:%d: missing tab separator", path, lineNum)
		}
		form = strings.ToLower(strings.TrimSpace(form))
		if form == "" {
			continue
		}
		for _, lemma := range strings.Split(rest, ",") {
			lemma = strings.TrimSpace(lemma)
			if lemma != "" {
				e.lemmas[form] = append(e.lemmas[form], lemma)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return e, nil
}

// Name implements LemmaEngine.
func (e *LexiconEngine) Name() string {
	return e.name
}

// Lemmas returns the candidates recorded for word, in file order. An
// unknown word yields no candidates and no error.
func (e *LexiconEngine) Lemmas(word string) ([]string, error) {
	return e.lemmas[strings.ToLower(word)], nil
}

// Len reports the number of distinct forms in the table.
func (e *LexiconEngine) Len() int {
	return len(e.lemmas)
}
