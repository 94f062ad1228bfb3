// Package docx extracts plain text from .docx reference transcripts.
//
// Only paragraph text is read; tables, headers, and embedded objects are
// ignored. The extractor performs no normalization; whatever the document
// contains is what the metric sees.
package docx
