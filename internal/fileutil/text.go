package fileutil

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/harrison/fsearch/internal/models"
	"golang.org/x/text/encoding/charmap"
)

// ExtractLines reads path as raw bytes and returns its lines reduced to
// printable characters. See ExtractReader for the decoding rules.
func ExtractLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := ExtractReader(f)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	return lines, nil
}

// ExtractReader splits r on '\n' and maps every byte independently to a rune
// (ISO-8859-1), keeping only printable runes. Line terminators and other
// control bytes are dropped. A final record without '\n' counts as a line; a
// trailing '\n' does not start a new one. Lines made only of non-printable
// bytes are kept as empty strings so the line count matches the source.
func ExtractReader(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0)

	for {
		record, err := reader.ReadBytes('\n')
		if len(record) > 0 {
			lines = append(lines, PrintableString(record))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, err
		}
	}
}

// PrintableString decodes raw bytes one at a time and drops everything that
// is not printable.
func PrintableString(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if r := charmap.ISO8859_1.DecodeByte(c); IsPrintable(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPrintable reports whether r is a graphic character or the ASCII space.
// Tabs, line breaks, NBSP and soft hyphen are not printable.
func IsPrintable(r rune) bool {
	return unicode.IsPrint(r)
}
