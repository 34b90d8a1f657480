package annotator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is a closed set of decoded request variants:
// LemmatizeRequest or AnalyzeRequest.
type Request interface {
	isRequest()
}

// LemmatizeRequest asks for the lemma of a single word.
// Word is already lowercased.
type LemmatizeRequest struct {
	Word string
}

// AnalyzeRequest asks for a full analysis of a sentence.
type AnalyzeRequest struct {
	Text string
}

func (LemmatizeRequest) isRequest() {}
func (AnalyzeRequest) isRequest()   {}

// ProtocolError is a per-line protocol failure. Its message is sent back
// verbatim as the "error" field of the response.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// protocolErrorf builds a ProtocolError with a formatted message.
func protocolErrorf(format string, args ...any) *ProtocolError {
	return &ProtocolError{Message: fmt.Sprintf(format, args...)}
}

// rawRequest is the wire shape of one request line.
type rawRequest struct {
	Action string `json:"action"`
	Word   string `json:"word"`
	Text   string `json:"text"`
}

// ParseRequest decodes one input line into a request variant. The action
// defaults to "lemmatize" when absent; the word is lowercased before any
// lookup. All failures are ProtocolErrors, never fatal.
func ParseRequest(line []byte) (Request, *ProtocolError) {
	var raw rawRequest
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, &ProtocolError{Message: "Invalid JSON"}
	}

	action := raw.Action
	if action == "" {
		action = "lemmatize"
	}

	switch action {
	case "lemmatize":
		if raw.Word == "" {
			return nil, &ProtocolError{Message: "Missing word field"}
		}
		return LemmatizeRequest{Word: strings.ToLower(raw.Word)}, nil
	case "analyze":
		if raw.Text == "" {
			return nil, &ProtocolError{Message: "Missing text field"}
		}
		return AnalyzeRequest{Text: raw.Text}, nil
	default:
		return nil, protocolErrorf("Unknown action: %s", action)
	}
}

// ParseWordRequest decodes one input line of the lemma-only service, which
// accepts {"word": ...} with no action field.
func ParseWordRequest(line []byte) (LemmatizeRequest, *ProtocolError) {
	var raw rawRequest
	if err := json.Unmarshal(line, &raw); err != nil {
		return LemmatizeRequest{}, &ProtocolError{Message: "Invalid JSON"}
	}
	if raw.Word == "" {
		return LemmatizeRequest{}, &ProtocolError{Message: "Missing word field"}
	}
	return LemmatizeRequest{Word: strings.ToLower(raw.Word)}, nil
}
