package docx

import (
	"os"
	"strings"

	godocx "github.com/fumiama/go-docx"

	"werbench/internal/services"
)

// Extractor reads reference transcripts stored as .docx documents.
// The zero value is ready to use.
type Extractor struct{}

// NewExtractor returns a document text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the paragraph-level text of the document at path, in
// document order, joined with newline separators. Empty paragraphs are kept
// as empty lines so the reference text retains its original line structure.
func (e *Extractor) ExtractText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "docx", "open", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "docx", "stat", path, err)
	}

	doc, err := godocx.Parse(file, info.Size())
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "docx", "parse", path, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*godocx.Paragraph)
		if !ok {
			continue
		}
		paragraphs = append(paragraphs, paragraphText(para))
	}
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphText concatenates the text runs of a paragraph, skipping non-text
// children such as drawings and hyperlink markers.
func paragraphText(para *godocx.Paragraph) string {
	var b strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*godocx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if text, ok := rc.(*godocx.Text); ok {
				b.WriteString(text.Text)
			}
		}
	}
	return b.String()
}
