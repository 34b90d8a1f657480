package annotator

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// PipeEngine is an AnalysisEngine backed by an external pretrained
// pipeline process (typically a spaCy bridge). The process is started once
// and exchanges one JSON document per request over its standard streams:
//
//	→ {"text": "..."}
//	← {"tokens": [...], "entities": [...]}            on success
//	← {"error": "..."}                                on failure
//
// The engine is strictly sequential: one request is written and its
// response fully read before the next.
type PipeEngine struct {
	name  string
	cmd   *exec.Cmd
	stdin io.WriteCloser
	enc   *json.Encoder
	dec   *json.Decoder
	bw    *bufio.Writer
}

// pipeResponse is the wire shape of one child-process reply.
type pipeResponse struct {
	Tokens   []RawToken  `json:"tokens"`
	Entities []RawEntity `json:"entities"`
	Error    string      `json:"error"`
}

// NewPipeEngine starts the pipeline process given by argv and waits for
// nothing: the child loads its model lazily or eagerly as it sees fit, and
// a load failure surfaces as an error on the first Analyze call or as an
// immediate start failure here. name becomes the "method" identifier of
// every response produced through this engine.
func NewPipeEngine(name string, argv []string) (*PipeEngine, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("pipe engine: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe engine stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe engine stdout: %w", err)
	}
	// The child's stderr is inherited so its startup diagnostics reach ours.
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start pipeline %q: %w", argv[0], err)
	}

	bw := bufio.NewWriter(stdin)
	return &PipeEngine{
		name:  name,
		cmd:   cmd,
		stdin: stdin,
		enc:   json.NewEncoder(bw),
		dec:   json.NewDecoder(bufio.NewReader(stdout)),
		bw:    bw,
	}, nil
}

// Name implements AnalysisEngine.
func (e *PipeEngine) Name() string {
	return e.name
}

// Analyze sends text to the pipeline process and decodes its reply.
func (e *PipeEngine) Analyze(text string) (*RawAnalysis, error) {
	req := struct {
		Text string `json:"text"`
	}{Text: text}
	if err := e.enc.Encode(req); err != nil {
		return nil, fmt.Errorf("write to pipeline: %w", err)
	}
	if err := e.bw.Flush(); err != nil {
		return nil, fmt.Errorf("flush to pipeline: %w", err)
	}

	var resp pipeResponse
	if err := e.dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("read from pipeline: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("pipeline: %s", resp.Error)
	}
	return &RawAnalysis{Tokens: resp.Tokens, Entities: resp.Entities}, nil
}

// Close shuts the pipeline process down by closing its stdin (end of
// input is the child's clean termination condition) and reaping it.
func (e *PipeEngine) Close() error {
	if err := e.stdin.Close(); err != nil {
		return err
	}
	return e.cmd.Wait()
}
