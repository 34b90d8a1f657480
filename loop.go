package annotator

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ServeLemma runs the lemma-only line protocol: one {"word": ...} request
// per input line, one AnnotationRecord (or error) per output line, flushed
// after every line. Blank lines are skipped silently. The loop ends only
// when the input stream does; no per-line failure terminates it.
func ServeLemma(r io.Reader, w io.Writer, eng LemmaEngine) error {
	return serve(r, w, func(line []byte) any {
		req, perr := ParseWordRequest(line)
		if perr != nil {
			return ErrorResponse{Error: perr.Message}
		}
		return lemmatize(eng, req.Word)
	})
}

// Serve runs the full line protocol of the rich service: requests carry an
// action ("lemmatize" by default, or "analyze") and are answered with an
// AnnotationRecord, a SentenceAnalysis, or an error response.
func Serve(r io.Reader, w io.Writer, eng AnalysisEngine) error {
	return serve(r, w, func(line []byte) any {
		req, perr := ParseRequest(line)
		if perr != nil {
			return ErrorResponse{Error: perr.Message}
		}
		switch req := req.(type) {
		case LemmatizeRequest:
			raw, err := analyze(eng, req.Word)
			if err != nil {
				return ErrorRecord(req.Word, err.Error())
			}
			return NormalizeWordToken(req.Word, eng.Name(), raw)
		case AnalyzeRequest:
			raw, err := analyze(eng, req.Text)
			if err != nil {
				return AnalysisFailure(req.Text, err.Error())
			}
			return NormalizeAnalysis(req.Text, eng.Name(), raw)
		default:
			// Request is a closed set; this is unreachable.
			return ErrorResponse{Error: "Unknown action"}
		}
	})
}

// serve is the shared request loop: read a line, hand it to handle, write
// the response as one JSON line and flush before reading the next. Strict
// containment: handle never sees a blank line and must not panic (the
// engine wrappers below recover on its behalf).
func serve(r io.Reader, w io.Writer, handle func(line []byte) any) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for {
		line, readErr := br.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if err := enc.Encode(handle([]byte(trimmed))); err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("flush response: %w", err)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read request: %w", readErr)
		}
	}
}

// lemmatize calls the engine with panic containment and normalizes the
// outcome. Any fault degrades to the identity lemma at confidence 0.
func lemmatize(eng LemmaEngine, word string) AnnotationRecord {
	candidates, err := safeLemmas(eng, word)
	if err != nil {
		return ErrorRecord(word, err.Error())
	}
	return NormalizeLemma(word, eng.Name(), candidates)
}

// safeLemmas converts an engine panic into an ordinary error.
func safeLemmas(eng LemmaEngine, word string) (candidates []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()
	return eng.Lemmas(word)
}

// analyze converts an engine panic into an ordinary error. An engine that
// returns neither a result nor an error produced an unusable analysis,
// which degrades like any other engine failure.
func analyze(eng AnalysisEngine, text string) (raw *RawAnalysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()
	raw, err = eng.Analyze(text)
	if err == nil && raw == nil {
		err = errors.New("Empty document")
	}
	return raw, err
}
