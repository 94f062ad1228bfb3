// Package whisperserver provides a transcription backend that talks to a
// running whisper.cpp server over its REST API.
//
// Unlike the uvx-launched WhisperX backend this one keeps the model loaded
// between records, which makes it the better choice for large corpora. Each
// Transcribe call uploads one audio file to POST /inference and decodes the
// JSON response.
package whisperserver
