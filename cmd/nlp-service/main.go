// Command nlp-service answers German annotation requests over standard
// input/output, one JSON object per line. Requests carry an action:
//
//	→ {"action": "lemmatize", "word": "Häuser"}
//	→ {"action": "analyze", "text": "Angela Merkel wohnt in Berlin."}
//
// "lemmatize" is the default when no action is given. The service wraps an
// external pretrained pipeline process (for example a spaCy bridge) started
// once at launch; if the pipeline cannot start or fails its warm-up
// request, the service exits non-zero before reading any input.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	annotator "github.com/deutschkurs/annotator"
)

func main() {
	pipeline := flag.String("pipeline", "python3 spacy_bridge.py de_core_news_sm",
		"pipeline command to run (space-separated argv)")
	method := flag.String("method", "spacy", "engine identifier reported in responses")
	flag.Parse()

	eng, err := annotator.NewPipeEngine(*method, strings.Fields(*pipeline))
	if err != nil {
		log.Fatalf("failed to start pipeline: %v", err)
	}
	defer eng.Close()

	// Warm-up request: forces the pipeline to load its model now so a
	// missing model is a startup failure, not a per-request error.
	if _, err := eng.Analyze("."); err != nil {
		log.Fatalf("pipeline failed warm-up: %v", err)
	}
	log.Printf("nlp service ready (engine %s)", *method)

	if err := annotator.Serve(os.Stdin, os.Stdout, eng); err != nil {
		log.Fatalf("service error: %v", err)
	}
}
