// Package whisperx provides the uvx-launched WhisperX transcription backend.
//
// Each Transcribe call runs the whisperx tool over one audio file, writes the
// JSON transcript next to the source (or into a configured output directory),
// and returns the concatenated segment text. The command runner is injectable
// so tests can exercise argument construction without Python ever running.
package whisperx
