// Package pdfcover renders the first page of a PDF as a cover image.
package pdfcover

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Extractor renders the first page of a PDF byte stream as a PNG image.
type Extractor interface {
	CoverPNG(ctx context.Context, pdf io.Reader) ([]byte, error)
}

// Poppler extracts covers by shelling out to poppler's pdftoppm. Input and
// output go through a temporary directory; stdin/stdout piping is avoided
// because pdftoppm only learned to read "-" in poppler 0.84.
type Poppler struct {
	// Binary is the pdftoppm executable, "pdftoppm" by default.
	Binary string
}

// NewPoppler returns a Poppler extractor using pdftoppm from PATH.
func NewPoppler() *Poppler {
	return &Poppler{Binary: "pdftoppm"}
}

// CoverPNG renders page one of the PDF read from pdf as a PNG.
func (p *Poppler) CoverPNG(ctx context.Context, pdf io.Reader) ([]byte, error) {
	dir, err := os.MkdirTemp("", "pdfcover")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "input.pdf")
	f, err := os.Create(in)
	if err != nil {
		return nil, fmt.Errorf("failed to spool pdf: %w", err)
	}
	if _, err := io.Copy(f, pdf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to spool pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to spool pdf: %w", err)
	}

	root := filepath.Join(dir, "cover")
	cmd := exec.CommandContext(ctx, p.Binary, "-png", "-f", "1", "-l", "1", "-singlefile", in, root)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, stderr.String())
	}

	out, err := os.ReadFile(root + ".png")
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered cover: %w", err)
	}
	return out, nil
}
