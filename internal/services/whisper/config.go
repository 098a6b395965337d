package whisper

// Engine configuration constants.
const (
	// DefaultModel balances accuracy and runtime for typical speech.
	DefaultModel = "medium"

	CPUDevice  = "cpu"
	CUDADevice = "cuda"

	// StagedAudioName is the fixed filename extracted tracks are written to
	// inside a staged directory.
	StagedAudioName = "audio_track.wav"
)

// Command names for external tools.
const (
	WhisperCommand = "whisper"
	FFmpegCommand  = "ffmpeg"
)
