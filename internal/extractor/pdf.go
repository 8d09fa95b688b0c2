package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract converts an uploaded resume PDF into plain text. It never fails:
// malformed, encrypted, or image-only documents yield "" so chat creation can
// proceed with an empty resume section instead of blocking the user.
func Extract(data []byte) (text string) {
	defer func() {
		// the pdf library panics on some malformed xref tables
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if len(data) == 0 {
		return ""
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// skip problematic pages instead of failing entirely
			continue
		}
		sb.WriteString(content)
		sb.WriteString(" ")
	}

	return normalize(sb.String())
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
