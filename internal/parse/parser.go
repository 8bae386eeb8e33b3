package parse

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"hiresight-ml/internal/shared/storage/object"
	"hiresight-ml/internal/shared/telemetry"
)

// ErrEmptyDocument is returned when a document yields no text at all.
var ErrEmptyDocument = errors.New("document contains no extractable text")

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^\w\s.,@\-()+#&]`)
	periodRun     = regexp.MustCompile(`\.{2,}`)
)

// Result is the outcome of parsing one document.
type Result struct {
	Text       string `json:"text"`
	RawText    string `json:"raw_text,omitempty"`
	CharCount  int    `json:"char_count"`
	WordCount  int    `json:"word_count"`
	StorageKey string `json:"storage_key,omitempty"`
}

// Parser turns uploaded resume documents into cleaned plain text, persisting
// the original upload in the object store along the way.
type Parser struct {
	store object.ObjectStore
}

// New constructs a Parser backed by the given store.
func New(store object.ObjectStore) *Parser {
	return &Parser{store: store}
}

// Parse extracts, cleans and measures the text of a PDF or DOCX payload. The
// upload is saved first so a failed extraction still leaves the original
// available for inspection.
func (p *Parser) Parse(ctx context.Context, fileName string, mimeType string, data []byte) (Result, error) {
	storageKey := ""
	if p.store != nil {
		key, size, _, err := p.store.Save(ctx, "resumes", fileName, bytes.NewReader(data))
		if err != nil {
			telemetry.Warn("parse.store_failed", map[string]interface{}{
				"fileName": fileName,
				"error":    err.Error(),
			})
		} else {
			storageKey = key
			telemetry.Info("parse.stored", map[string]interface{}{
				"storageKey": key,
				"sizeBytes":  size,
			})
		}
	}

	raw, err := extractText(data, mimeType, fileName)
	if err != nil {
		return Result{}, err
	}

	cleaned := CleanText(raw)
	if cleaned == "" {
		return Result{}, ErrEmptyDocument
	}

	return Result{
		Text:       cleaned,
		RawText:    raw,
		CharCount:  utf8.RuneCountInString(cleaned),
		WordCount:  len(strings.Fields(cleaned)),
		StorageKey: storageKey,
	}, nil
}

// CleanText normalizes extracted document text: whitespace runs collapse to
// single spaces, characters outside word characters and common resume
// punctuation are dropped, and period runs collapse to one.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = disallowed.ReplaceAllString(text, "")
	text = periodRun.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}
