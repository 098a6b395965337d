package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scribe/internal/config"
	"scribe/internal/deps"
	"scribe/internal/history"
	"scribe/internal/language"
	"scribe/internal/logging"
	"scribe/internal/media/ffprobe"
	"scribe/internal/services"
	"scribe/internal/services/whisper"
	"scribe/internal/staging"
	"scribe/internal/transcript"
)

// Request describes one transcription run. Zero values fall back to
// configuration defaults.
type Request struct {
	Input      string
	Model      string
	Language   string
	AudioTrack *int
	OutDir     string
	Device     string
}

// Result reports a completed run.
type Result struct {
	RunID      string
	Source     string
	OutputPath string
	Text       string
	Language   string
	Device     string
	Elapsed    time.Duration
}

// ExtractFunc isolates an audio track from source into dest.
type ExtractFunc func(ctx context.Context, source string, trackIndex int, dest string) error

// PickFunc interactively asks the operator for a file. It returns an empty
// path when nothing was chosen.
type PickFunc func() (string, error)

// InspectFunc probes a media file for container metadata.
type InspectFunc func(ctx context.Context, path string) (ffprobe.Result, error)

// Pipeline runs the transcription flow. Construct with New; replace
// capabilities with the With* methods before the first Run.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	engine  whisper.Engine
	extract ExtractFunc
	probe   func() bool
	picker  PickFunc
	inspect InspectFunc
	store   *history.Store
}

// New wires a pipeline against the real external tools from cfg.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		engine: whisper.NewCLIEngine(cfg.WhisperBinary()),
		probe:  deps.AcceleratorAvailable,
	}
	p.extract = func(ctx context.Context, source string, trackIndex int, dest string) error {
		return whisper.ExtractTrack(ctx, cfg.FFmpegBinary(), source, trackIndex, dest)
	}
	p.inspect = func(ctx context.Context, path string) (ffprobe.Result, error) {
		return ffprobe.Inspect(ctx, cfg.FFprobeBinary(), path)
	}
	return p
}

// WithEngine replaces the transcription engine.
func (p *Pipeline) WithEngine(engine whisper.Engine) *Pipeline {
	p.engine = engine
	return p
}

// WithExtractor replaces the track extractor.
func (p *Pipeline) WithExtractor(extract ExtractFunc) *Pipeline {
	p.extract = extract
	return p
}

// WithAcceleratorProbe replaces the accelerator availability probe.
func (p *Pipeline) WithAcceleratorProbe(probe func() bool) *Pipeline {
	p.probe = probe
	return p
}

// WithPicker sets the interactive file picker used when no input is given.
func (p *Pipeline) WithPicker(picker PickFunc) *Pipeline {
	p.picker = picker
	return p
}

// WithInspector replaces the media prober used for history metadata.
func (p *Pipeline) WithInspector(inspect InspectFunc) *Pipeline {
	p.inspect = inspect
	return p
}

// WithHistory records completed runs in the given store.
func (p *Pipeline) WithHistory(store *history.Store) *Pipeline {
	p.store = store
	return p
}

// Run executes one transcription. Staged resources created along the way are
// released on every exit path, success or failure, without masking the run's
// real outcome.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	started := time.Now()
	runID := uuid.NewString()
	logger := p.logger.With(logging.String(logging.FieldRunID, runID))

	source, err := p.resolveInput(req.Input)
	if err != nil {
		return Result{}, err
	}
	logger.Info("input resolved", logging.String("source", source))

	// Fail fast on missing tools before any staging or inference work.
	if req.AudioTrack != nil {
		status := deps.Check(deps.Requirement{Name: "FFmpeg", Command: p.cfg.FFmpegBinary()})
		if !status.Available {
			return Result{}, services.Wrap(services.ErrDependency, "pipeline", "preflight",
				fmt.Sprintf("%s; install FFmpeg and ensure it is on PATH", status.Detail), nil)
		}
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Whisper.Model
	}
	device := whisper.ResolveDevice(firstNonEmpty(req.Device, p.cfg.Whisper.Device), p.probe)
	lang := language.ToISO1(firstNonEmpty(req.Language, p.cfg.Whisper.Language))

	engineModel, err := p.engine.Load(ctx, model, device)
	if err != nil {
		return Result{}, err
	}

	mediaPath := source
	var staged *staging.Dir
	defer func() {
		// Best-effort cleanup on every path that staged resources.
		staged.Release()
	}()

	if req.AudioTrack != nil {
		staged, err = staging.Create(p.cfg.Paths.StagingDir)
		if err != nil {
			return Result{}, services.Wrap(services.ErrExtraction, "pipeline", "stage", "", err)
		}
		dest := filepath.Join(staged.Path, whisper.StagedAudioName)
		if err := p.extract(ctx, source, *req.AudioTrack, dest); err != nil {
			return Result{}, err
		}
		mediaPath = dest
		logger.Info("audio track extracted",
			logging.Int("track", *req.AudioTrack),
			logging.String("staged", dest),
		)
	}

	logger.Info("transcribing",
		logging.String("model", model),
		logging.String("device", device),
		logging.String("language", language.DisplayName(lang)),
	)
	engineResult, err := engineModel.Transcribe(ctx, mediaPath, lang)
	if err != nil {
		return Result{}, err
	}

	outputPath, err := transcript.Write(engineResult.Text, source, req.OutDir)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		RunID:      runID,
		Source:     source,
		OutputPath: outputPath,
		Text:       engineResult.Text,
		Language:   engineResult.Language,
		Device:     device,
		Elapsed:    time.Since(started),
	}
	p.recordRun(ctx, logger, req, result)

	logger.Info("transcript written",
		logging.String("output", outputPath),
		logging.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (p *Pipeline) resolveInput(input string) (string, error) {
	if input == "" {
		if p.picker == nil {
			return "", services.Wrap(services.ErrInput, "pipeline", "resolve input",
				"no input file given (pass --input or run interactively)", nil)
		}
		picked, err := p.picker()
		if err != nil {
			return "", services.Wrap(services.ErrInput, "pipeline", "resolve input", "", err)
		}
		if picked == "" {
			return "", services.Wrap(services.ErrInput, "pipeline", "resolve input", "no input file selected", nil)
		}
		input = picked
	}

	expanded, err := config.ExpandPath(input)
	if err != nil {
		return "", services.Wrap(services.ErrInput, "pipeline", "resolve input", "", err)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", services.Wrap(services.ErrInput, "pipeline", "resolve input",
				fmt.Sprintf("file does not exist: %s", expanded), nil)
		}
		return "", services.Wrap(services.ErrInput, "pipeline", "resolve input", "", err)
	}
	if info.IsDir() {
		return "", services.Wrap(services.ErrInput, "pipeline", "resolve input",
			fmt.Sprintf("%s is a directory", expanded), nil)
	}
	return expanded, nil
}

// recordRun persists the run in history. Failures are logged and swallowed;
// history is bookkeeping, not part of the run's contract.
func (p *Pipeline) recordRun(ctx context.Context, logger *slog.Logger, req Request, result Result) {
	if p.store == nil {
		return
	}

	var mediaSeconds float64
	if p.inspect != nil {
		if probed, err := p.inspect(ctx, result.Source); err == nil {
			mediaSeconds = probed.DurationSeconds()
		}
	}

	run := history.Run{
		ID:           result.RunID,
		SourcePath:   result.Source,
		OutputPath:   result.OutputPath,
		Model:        firstNonEmpty(req.Model, p.cfg.Whisper.Model),
		Device:       result.Device,
		Language:     result.Language,
		AudioTrack:   req.AudioTrack,
		MediaSeconds: mediaSeconds,
		Elapsed:      result.Elapsed,
	}
	if err := p.store.Record(ctx, run); err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
