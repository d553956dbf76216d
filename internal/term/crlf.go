package term

import (
	"bytes"
	"io"
)

// CRLFWriter turns "\n" into "\r\n". Raw mode disables output
// post-processing, so a bare newline no longer returns the carriage.
type CRLFWriter struct {
	w io.Writer
}

// NewCRLFWriter wraps w.
func NewCRLFWriter(w io.Writer) *CRLFWriter { return &CRLFWriter{w: w} }

// Write translates p and reports len(p) on success.
func (c *CRLFWriter) Write(p []byte) (int, error) {
	if bytes.IndexByte(p, '\n') < 0 {
		return c.w.Write(p)
	}
	out := make([]byte, 0, len(p)+bytes.Count(p, []byte{'\n'}))
	for i, b := range p {
		if b == '\n' && (i == 0 || p[i-1] != '\r') {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
