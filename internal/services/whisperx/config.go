package whisperx

// Config captures runtime settings for WhisperX transcription.
type Config struct {
	// Model is the WhisperX model to use (e.g., "base", "large-v3").
	Model string
	// CUDAEnabled enables GPU acceleration.
	CUDAEnabled bool
	// Language is the ISO 639-1 hint forwarded to WhisperX. Empty lets the
	// model auto-detect.
	Language string
	// OutputDir is where WhisperX writes its transcript artifacts. Empty
	// defaults to the audio file's directory.
	OutputDir string
}

// WhisperX invocation constants.
const (
	DefaultModel   = "base"
	CUDAIndexURL   = "https://download.pytorch.org/whl/cu128"
	PypiIndexURL   = "https://pypi.org/simple"
	BatchSize      = "4"
	OutputFormat   = "json"
	CPUDevice      = "cpu"
	CUDADevice     = "cuda"
	CPUComputeType = "float32"
)

// UVXCommand launches WhisperX through uv's tool runner.
const UVXCommand = "uvx"
