package extractor

import "testing"

func TestExtractNeverFails(t *testing.T) {
	cases := map[string][]byte{
		"empty":            nil,
		"garbage":          []byte("definitely not a pdf"),
		"truncated header": []byte("%PDF-1.4"),
		"binary junk":      {0x25, 0x50, 0x44, 0x46, 0xff, 0x00, 0xde, 0xad},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			// must not panic; malformed input degrades to ""
			if got := Extract(data); got != "" {
				t.Errorf("Extract = %q, want empty", got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("  a\n\tb   c \n"); got != "a b c" {
		t.Errorf("normalize = %q", got)
	}
	if got := normalize(""); got != "" {
		t.Errorf("normalize(\"\") = %q", got)
	}
}
