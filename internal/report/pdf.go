// ABOUTME: Text extraction from uploaded PDF health reports
// ABOUTME: Pulls text-showing operators from pdfcpu-decoded content streams
package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

var (
	tjPattern = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)
	tjArray   = regexp.MustCompile(`\[((?:[^\[\]])*)\]\s*TJ`)
	strChunk  = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

// ExtractText pulls plain text from every page of a PDF file. Pages
// with no extractable text are skipped; page texts join on newlines.
func ExtractText(path string) (string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var pages []string
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d content: %w", pageNr, err)
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d content: %w", pageNr, err)
		}
		if text := contentText(string(content)); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// contentText scrapes the text-showing operators (Tj, TJ) out of one
// decoded content stream. This is a best-effort extraction: kerned TJ
// arrays lose inter-chunk spacing and non-literal encodings are left
// as-is, which is acceptable for report memory text.
func contentText(content string) string {
	var parts []string
	for _, match := range tjPattern.FindAllStringSubmatch(content, -1) {
		if s := unescape(match[1]); s != "" {
			parts = append(parts, s)
		}
	}
	for _, match := range tjArray.FindAllStringSubmatch(content, -1) {
		var sb strings.Builder
		for _, chunk := range strChunk.FindAllStringSubmatch(match[1], -1) {
			sb.WriteString(unescape(chunk[1]))
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// unescape resolves PDF literal-string escapes.
func unescape(s string) string {
	replacer := strings.NewReplacer(
		`\(`, "(",
		`\)`, ")",
		`\\`, `\`,
		`\n`, "\n",
		`\r`, "\r",
		`\t`, "\t",
	)
	return replacer.Replace(s)
}
