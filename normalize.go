package annotator

import (
	"strings"
)

// NormalizeLemma shapes a candidate list into an AnnotationRecord.
//
// The first candidate is authoritative. A candidate that differs from the
// input word (case-insensitive) is a genuine reduction and scores 0.95
// under the engine's name. An unchanged candidate, or no candidates at
// all, falls back to the identity lemma at 0.3 with method "heuristic".
func NormalizeLemma(word, engine string, candidates []string) AnnotationRecord {
	if len(candidates) > 0 {
		lemma := candidates[0]
		if !strings.EqualFold(lemma, word) {
			return AnnotationRecord{
				Word:       word,
				Lemma:      lemma,
				Confidence: ConfidenceModel,
				Method:     engine,
			}
		}
		return AnnotationRecord{
			Word:       word,
			Lemma:      lemma,
			Confidence: ConfidenceUnchanged,
			Method:     MethodHeuristic,
		}
	}
	return AnnotationRecord{
		Word:       word,
		Lemma:      word,
		Confidence: ConfidenceUnchanged,
		Method:     MethodHeuristic,
	}
}

// ErrorRecord degrades a failed engine call for word to the identity
// lemma at confidence 0 with the fault message attached.
func ErrorRecord(word, msg string) AnnotationRecord {
	return AnnotationRecord{
		Word:       word,
		Lemma:      word,
		Confidence: ConfidenceError,
		Method:     MethodError,
		Error:      msg,
	}
}

// NormalizeWordToken shapes the first token of a rich analysis of a single
// word into an AnnotationRecord carrying pos, tag, dep and morphology.
// A raw analysis with no tokens yields the "Empty document" error record.
func NormalizeWordToken(word, engine string, raw *RawAnalysis) AnnotationRecord {
	if raw == nil || len(raw.Tokens) == 0 {
		return ErrorRecord(word, "Empty document")
	}
	tok := raw.Tokens[0]
	rec := NormalizeLemma(word, engine, []string{tok.Lemma})
	rec.POS = tok.POS
	rec.Tag = tok.Tag
	rec.Dep = tok.Dep
	rec.Morph = ParseMorphology(tok.Morph)
	return rec
}

// NormalizeAnalysis shapes raw engine output for text into a
// SentenceAnalysis. Head indices are resolved to the governor's surface
// text; the root token conventionally points at itself, and an index out
// of range degrades to the token's own text. Entity spans with
// end <= start are dropped. A nil raw is treated as an empty analysis.
func NormalizeAnalysis(text, engine string, raw *RawAnalysis) SentenceAnalysis {
	if raw == nil {
		raw = &RawAnalysis{}
	}
	tokens := make([]TokenAnnotation, 0, len(raw.Tokens))
	for _, tok := range raw.Tokens {
		head := tok.Text
		if tok.Head >= 0 && tok.Head < len(raw.Tokens) {
			head = raw.Tokens[tok.Head].Text
		}
		var norm *float64
		if tok.HasVector {
			v := tok.VectorNorm
			norm = &v
		}
		tokens = append(tokens, TokenAnnotation{
			Text:       tok.Text,
			Lemma:      tok.Lemma,
			POS:        tok.POS,
			Tag:        tok.Tag,
			Dep:        tok.Dep,
			Head:       head,
			HasVector:  tok.HasVector,
			VectorNorm: norm,
			Morph:      ParseMorphology(tok.Morph),
		})
	}

	entities := make([]Entity, 0, len(raw.Entities))
	for _, ent := range raw.Entities {
		if ent.End <= ent.Start {
			continue
		}
		entities = append(entities, Entity{
			Text:  ent.Text,
			Label: ent.Label,
			Start: ent.Start,
			End:   ent.End,
		})
	}

	return SentenceAnalysis{
		Success:  true,
		Text:     text,
		Tokens:   tokens,
		Entities: entities,
		Method:   engine,
	}
}

// AnalysisFailure shapes a failed analysis of text into the error response.
func AnalysisFailure(text, msg string) AnalysisError {
	return AnalysisError{
		Success: false,
		Text:    text,
		Error:   msg,
		Method:  MethodError,
	}
}

// ParseMorphology parses a pipe-delimited feature string such as
// "Case=Nom|Number=Sing" into a map. Parsing is total: the empty string
// yields an empty map and segments without "=" are dropped. Only the first
// "=" of a segment separates key from value.
func ParseMorphology(s string) map[string]string {
	morph := make(map[string]string)
	if s == "" {
		return morph
	}
	for _, seg := range strings.Split(s, "|") {
		key, val, ok := strings.Cut(seg, "=")
		if !ok || key == "" {
			continue
		}
		morph[key] = val
	}
	return morph
}
