// Package annotator provides line-delimited request/response annotation for
// German words and sentences: lemmatization, part-of-speech tagging,
// dependency parsing, morphological features and named-entity recognition.
//
// The package normalizes the raw output of a pluggable linguistic engine
// into a stable, confidence-scored JSON schema. Two engine variants are
// provided: a file-backed lemma lookup table (LexiconEngine) and a wrapper
// around an external pretrained pipeline process (PipeEngine).
package annotator

// LemmaEngine produces lemma candidates for a single word form.
// Implementations must return candidates in a deterministic order; the
// first candidate is taken as authoritative.
type LemmaEngine interface {
	// Name identifies the engine in the "method" field of responses.
	Name() string

	// Lemmas returns zero or more candidate lemmas for word.
	// An empty slice means the engine has no answer (not an error).
	Lemmas(word string) ([]string, error)
}

// AnalysisEngine runs a full linguistic pipeline over a text.
type AnalysisEngine interface {
	// Name identifies the engine in the "method" field of responses.
	Name() string

	// Analyze parses text into tokens and named entities.
	Analyze(text string) (*RawAnalysis, error)
}

// RawToken is one token as produced by an analysis engine, before
// normalization. Head is the index of the syntactic governor within the
// token sequence; Morph is a pipe-delimited Key=Value feature string.
type RawToken struct {
	Text       string  `json:"text"`
	Lemma      string  `json:"lemma"`
	POS        string  `json:"pos"`
	Tag        string  `json:"tag"`
	Dep        string  `json:"dep"`
	Head       int     `json:"head"`
	Morph      string  `json:"morph"`
	HasVector  bool    `json:"has_vector"`
	VectorNorm float64 `json:"vector_norm"`
}

// RawEntity is one named-entity span as produced by an analysis engine.
// Start and End are byte offsets into the analyzed text, End exclusive.
type RawEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// RawAnalysis is the unnormalized output of an analysis engine.
type RawAnalysis struct {
	Tokens   []RawToken  `json:"tokens"`
	Entities []RawEntity `json:"entities"`
}
