package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

// ErrUnterminated is returned when an opening "---" line has no closing line.
var ErrUnterminated = errors.New("missing closing front matter delimiter")

// Split separates a leading front matter block from the body.
// found is false when content does not start with a "---" line, in which
// case body is content unchanged.
func Split(content []byte) (header, body []byte, found bool, err error) {
	rest, ok := cutDelimiterLine(content)
	if !ok {
		return nil, content, false, nil
	}

	for offset := 0; offset <= len(rest); {
		end := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		next := len(rest) + 1
		if end < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+end]
			next = offset + end + 1
		}
		if string(bytes.TrimRight(line, "\r")) == "---" {
			if next > len(rest) {
				return rest[:offset], nil, true, nil
			}
			return rest[:offset], rest[next:], true, nil
		}
		offset = next
	}
	return nil, nil, true, ErrUnterminated
}

// Parse decodes the front matter of content into matter and returns the body.
// Content without front matter is returned whole and matter is left untouched.
func Parse[T any](content []byte, matter *T) ([]byte, error) {
	header, body, found, err := Split(content)
	if err != nil || !found {
		return body, err
	}
	if err := yaml.Unmarshal(header, matter); err != nil {
		return nil, errors.Wrap(err, "parsing front matter")
	}
	return body, nil
}

// cutDelimiterLine strips an opening "---" line.
func cutDelimiterLine(content []byte) ([]byte, bool) {
	for _, prefix := range []string{"---\n", "---\r\n"} {
		if rest, ok := bytes.CutPrefix(content, []byte(prefix)); ok {
			return rest, true
		}
	}
	return nil, false
}
