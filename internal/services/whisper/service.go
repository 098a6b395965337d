package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"scribe/internal/services"
)

// Engine loads transcription models bound to a compute device.
type Engine interface {
	Load(ctx context.Context, model, device string) (Model, error)
}

// Model runs synchronous inference over a complete media file.
type Model interface {
	Transcribe(ctx context.Context, path, language string) (Result, error)
}

// Result contains a finished transcription. Text is the aggregate transcript;
// Segments carry per-utterance timing when the engine provides it.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}

// Segment is a single timed utterance.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// CLIEngine drives the whisper command-line tool. Loading a model verifies
// the binary resolves so a missing engine fails before any file work; the
// actual model download/load cost is paid inside the subprocess per run.
type CLIEngine struct {
	binary string
}

// NewCLIEngine creates an engine around the given whisper binary. An empty
// binary resolves "whisper" from PATH.
func NewCLIEngine(binary string) *CLIEngine {
	if strings.TrimSpace(binary) == "" {
		binary = WhisperCommand
	}
	return &CLIEngine{binary: binary}
}

// Load binds a model identifier to a device. Model name validity is the
// engine's responsibility; an unknown name fails at transcribe time inside
// the subprocess.
func (e *CLIEngine) Load(ctx context.Context, model, device string) (Model, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(device) == "" {
		device = CPUDevice
	}
	resolved, err := exec.LookPath(e.binary)
	if err != nil {
		return nil, services.Wrap(services.ErrDependency, "engine", "load",
			fmt.Sprintf("whisper binary %q not found; install openai-whisper (pip install -U openai-whisper)", e.binary), err)
	}
	return &cliModel{binary: resolved, model: model, device: device}, nil
}

type cliModel struct {
	binary string
	model  string
	device string
}

// enginePayload is the JSON document the whisper CLI writes alongside its
// other output formats.
type enginePayload struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

func (m *cliModel) Transcribe(ctx context.Context, path, language string) (Result, error) {
	if strings.TrimSpace(path) == "" {
		return Result{}, services.Wrap(services.ErrEngine, "engine", "transcribe", "source path required", nil)
	}

	// The CLI only writes results to files, so give it a scratch directory
	// and read the JSON document back.
	outputDir, err := os.MkdirTemp("", "scribe-engine-")
	if err != nil {
		return Result{}, services.Wrap(services.ErrEngine, "engine", "transcribe", "create output dir", err)
	}
	defer os.RemoveAll(outputDir)

	args := m.buildArgs(path, outputDir, language)
	cmd := exec.CommandContext(ctx, m.binary, args...) //nolint:gosec
	if output, runErr := cmd.CombinedOutput(); runErr != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = "inference failed"
		}
		return Result{}, services.Wrap(services.ErrEngine, "engine", "transcribe", detail, runErr)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	payloadPath := filepath.Join(outputDir, stem+".json")
	data, err := os.ReadFile(payloadPath)
	if err != nil {
		return Result{}, services.Wrap(services.ErrEngine, "engine", "transcribe", "read engine output", err)
	}

	var payload enginePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{}, services.Wrap(services.ErrEngine, "engine", "transcribe", "parse engine output", err)
	}

	result := Result{Text: payload.Text, Language: payload.Language}
	for _, seg := range payload.Segments {
		result.Segments = append(result.Segments, Segment{Start: seg.Start, End: seg.End, Text: strings.TrimSpace(seg.Text)})
	}
	if result.Language == "" {
		result.Language = language
	}
	return result, nil
}

func (m *cliModel) buildArgs(path, outputDir, language string) []string {
	args := []string{
		path,
		"--model", m.model,
		"--device", m.device,
		"--output_dir", outputDir,
		"--output_format", "json",
		"--verbose", "False",
	}
	if m.device == CPUDevice {
		// fp16 is a GPU-only fast path; silence the per-run downgrade warning.
		args = append(args, "--fp16", "False")
	}
	if language != "" {
		args = append(args, "--language", language)
	}
	return args
}
