package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tillbook"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ShiftMarkdown renders the end-of-shift reconciliation.
func ShiftMarkdown(r tillbook.ShiftReport, currency string) string {
	return renderTemplate("shift", "shift.md", moneyFuncs(currency), r)
}

// wordHeader and wordFooter turn an HTML fragment into a document Word opens
// as a .doc file.
const (
	wordHeader = `<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head><meta charset="utf-8"><title>Shift Report</title>
<style>table{border-collapse:collapse}td,th{border:1px solid #999;padding:4px 8px}</style>
</head><body>
`
	wordFooter = "</body></html>\n"
)

// ShiftWord renders the shift report as a Word-compatible HTML document.
func ShiftWord(r tillbook.ShiftReport, currency string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(wordHeader)
	conv := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := conv.Convert([]byte(ShiftMarkdown(r, currency)), &buf); err != nil {
		return nil, fmt.Errorf("cannot convert shift report: %w", err)
	}
	buf.WriteString(wordFooter)
	return buf.Bytes(), nil
}
