// Command server exposes the German annotator as a JSON REST API, for
// callers that prefer HTTP over the line protocol.
//
// Endpoints:
//
//	GET  /api/lemmatize?word=<word>
//	POST /api/analyze   body: {"text":"..."}
//	GET  /api/health
//
// The lemmatize endpoint is served by the lexicon engine; analyze requires
// a configured pipeline command and returns 501 without one.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	annotator "github.com/deutschkurs/annotator"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleLemmatize(eng annotator.LemmaEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		word = strings.ToLower(word)
		candidates, err := eng.Lemmas(word)
		if err != nil {
			writeJSON(w, http.StatusOK, annotator.ErrorRecord(word, err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, annotator.NormalizeLemma(word, eng.Name(), candidates))
	}
}

func handleAnalyze(eng annotator.AnalysisEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		if eng == nil {
			writeError(w, http.StatusNotImplemented, "no analysis pipeline configured")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		raw, err := eng.Analyze(body.Text)
		if err != nil {
			writeJSON(w, http.StatusOK, annotator.AnalysisFailure(body.Text, err.Error()))
			return
		}
		if raw == nil {
			writeJSON(w, http.StatusOK, annotator.AnalysisFailure(body.Text, "Empty document"))
			return
		}
		writeJSON(w, http.StatusOK, annotator.NormalizeAnalysis(body.Text, eng.Name(), raw))
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func main() {
	lexicon := flag.String("lexicon", "data/lemmas.de.tsv", "path to the form→lemma table")
	pipeline := flag.String("pipeline", "", "optional pipeline command for /api/analyze")
	method := flag.String("method", "spacy", "engine identifier for pipeline responses")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading lexicon from %s …", *lexicon)
	lex, err := annotator.NewLexiconEngine(*lexicon)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Printf("lexicon loaded (%d forms)", lex.Len())

	var analysis annotator.AnalysisEngine
	if *pipeline != "" {
		pipe, err := annotator.NewPipeEngine(*method, strings.Fields(*pipeline))
		if err != nil {
			log.Fatalf("failed to start pipeline: %v", err)
		}
		defer pipe.Close()
		// Warm-up request: forces the pipeline to load its model now so a
		// missing model is a startup failure, not a per-request error.
		if _, err := pipe.Analyze("."); err != nil {
			log.Fatalf("pipeline failed warm-up: %v", err)
		}
		analysis = pipe
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lemmatize", handleLemmatize(lex))
	mux.HandleFunc("/api/analyze", handleAnalyze(analysis))
	mux.HandleFunc("/api/health", handleHealth())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
