package fileops

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/jmgilman/fileops/errors"
)

// validateUTF8 returns encoding.ErrInvalidUTF8 if data is not valid UTF-8.
func validateUTF8(data []byte) error {
	_, _, err := transform.Bytes(encoding.UTF8Validator, data)
	return err
}

// detectCharset guesses the character set of data. It returns "" when no
// guess could be made.
func detectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return strings.ToLower(result.Charset)
}

// encodingError builds the error reported for text that is not UTF-8,
// attaching the likely charset of data when one can be detected.
func encodingError(op, path string, data []byte, cause error) error {
	err := errors.WithOp(errors.Wrap(cause, errors.CodeEncoding, "content is not valid UTF-8"), op, path)
	if charset := detectCharset(data); charset != "" {
		err = errors.WithContext(err, "charset", charset)
	}
	return err
}
