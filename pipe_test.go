package annotator

import (
	"os/exec"
	"testing"
)

func TestNewPipeEngineEmptyCommand(t *testing.T) {
	if _, err := NewPipeEngine("spacy", nil); err == nil {
		t.Fatal("want error for empty command")
	}
}

func TestNewPipeEngineMissingBinary(t *testing.T) {
	if _, err := NewPipeEngine("spacy", []string{"/nonexistent/pipeline-binary"}); err == nil {
		t.Fatal("want error for missing binary")
	}
}

// TestPipeEngineDeadPipeline exercises what the services' warm-up request
// catches at startup: a pipeline that exits without answering makes
// Analyze fail rather than hang or crash.
func TestPipeEngineDeadPipeline(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	eng, err := NewPipeEngine("spacy", []string{"false"})
	if err != nil {
		t.Fatalf("NewPipeEngine: %v", err)
	}
	defer eng.Close()

	if _, err := eng.Analyze("."); err == nil {
		t.Fatal("want error from pipeline that exited")
	}
}

// TestPipeEngineFraming round-trips the wire framing through cat: the echo
// of our own request decodes as a reply with no tokens and no error.
func TestPipeEngineFraming(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	eng, err := NewPipeEngine("echo", []string{"cat"})
	if err != nil {
		t.Fatalf("NewPipeEngine: %v", err)
	}
	defer eng.Close()

	raw, err := eng.Analyze("Hallo Welt")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(raw.Tokens) != 0 || len(raw.Entities) != 0 {
		t.Errorf("raw = %+v, want empty analysis from echoed request", raw)
	}
}
