package ingest

import "io"

// TextConverter handles plain text: the already-pasted case.
type TextConverter struct{}

func (c *TextConverter) Convert(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
