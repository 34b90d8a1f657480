// Command lemma-service answers German lemmatization requests over
// standard input/output, one JSON object per line:
//
//	→ {"word": "Häuser"}
//	← {"word": "häuser", "lemma": "haus", "confidence": 0.95, "method": "lexicon"}
//
// The lemma table is loaded once at startup; a load failure is fatal.
// The service exits cleanly when its input stream closes.
package main

import (
	"flag"
	"log"
	"os"

	annotator "github.com/deutschkurs/annotator"
)

func main() {
	lexicon := flag.String("lexicon", "data/lemmas.de.tsv", "path to the form→lemma table")
	flag.Parse()

	eng, err := annotator.NewLexiconEngine(*lexicon)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Printf("lemma service ready (%d forms)", eng.Len())

	if err := annotator.ServeLemma(os.Stdin, os.Stdout, eng); err != nil {
		log.Fatalf("service error: %v", err)
	}
}
