package annotator

// Confidence tiers for automated lemma decisions. Downstream consumers use
// these exact values to trust, flag for review, or discard a lemma.
const (
	// ConfidenceModel is assigned when the engine reduced the word to a
	// different base form.
	ConfidenceModel = 0.95

	// ConfidenceUnchanged is assigned when the word came back unchanged
	// or the engine had no answer: low but non-zero.
	ConfidenceUnchanged = 0.3

	// ConfidenceError is assigned when the engine call failed outright.
	ConfidenceError = 0.0
)

// Method values that do not come from an engine name.
const (
	MethodHeuristic = "heuristic"
	MethodError     = "error"
)

// AnnotationRecord is the word-level response. Lemma is always non-empty
// (the input word itself when nothing better is known) and Confidence is
// always present. Error is set only when Method is "error". The pos, tag,
// dep and morph fields are filled only by the rich engine variant.
type AnnotationRecord struct {
	Word       string            `json:"word"`
	Lemma      string            `json:"lemma"`
	Confidence float64           `json:"confidence"`
	Method     string            `json:"method"`
	POS        string            `json:"pos,omitempty"`
	Tag        string            `json:"tag,omitempty"`
	Dep        string            `json:"dep,omitempty"`
	Morph      map[string]string `json:"morph,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// TokenAnnotation is one token of a sentence analysis. Head is the surface
// text of the syntactic governor (the token's own text for the root).
// VectorNorm is null unless HasVector; Morph is never null.
type TokenAnnotation struct {
	Text       string            `json:"text"`
	Lemma      string            `json:"lemma"`
	POS        string            `json:"pos"`
	Tag        string            `json:"tag"`
	Dep        string            `json:"dep"`
	Head       string            `json:"head"`
	HasVector  bool              `json:"has_vector"`
	VectorNorm *float64          `json:"vector_norm"`
	Morph      map[string]string `json:"morph"`
}

// Entity is a labeled span of the analyzed sentence. Offsets are byte
// positions into the original text, End exclusive, End > Start.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// SentenceAnalysis is the successful sentence-level response. Tokens and
// Entities are always present, possibly empty.
type SentenceAnalysis struct {
	Success  bool              `json:"success"`
	Text     string            `json:"text"`
	Tokens   []TokenAnnotation `json:"tokens"`
	Entities []Entity          `json:"entities"`
	Method   string            `json:"method"`
}

// AnalysisError is the failed sentence-level response; the error text
// replaces tokens and entities.
type AnalysisError struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Error   string `json:"error"`
	Method  string `json:"method"`
}

// ErrorResponse reports a protocol-level failure (malformed line, missing
// field, unknown action) for one input line.
type ErrorResponse struct {
	Error string `json:"error"`
}
