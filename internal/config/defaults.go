package config

const (
	defaultAudioExt             = ".wav"
	defaultTranscriptExt        = ".docx"
	defaultExcludePattern       = "_ASA24_"
	defaultEngineBackend        = BackendWhisperX
	defaultEngineLanguage       = "en"
	defaultWhisperXModel        = "base"
	defaultWhisperXCacheDir     = "~/.cache/werbench/whisperx"
	defaultWhisperServerURL     = "http://127.0.0.1:8080"
	defaultWhisperServerTimeout = 600
	defaultHistoryPath          = "~/.local/share/werbench/history.db"
	defaultLogDir               = "~/.local/share/werbench/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Supported transcription backends.
const (
	BackendWhisperX      = "whisperx"
	BackendWhisperServer = "whisper-server"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Matching: Matching{
			AudioExt:       defaultAudioExt,
			TranscriptExt:  defaultTranscriptExt,
			ExcludePattern: defaultExcludePattern,
		},
		Engine: Engine{
			Backend:  defaultEngineBackend,
			Language: defaultEngineLanguage,
		},
		WhisperX: WhisperX{
			Model:    defaultWhisperXModel,
			CacheDir: defaultWhisperXCacheDir,
		},
		WhisperServer: WhisperServer{
			URL:            defaultWhisperServerURL,
			TimeoutSeconds: defaultWhisperServerTimeout,
		},
		History: History{
			Enabled: false,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
