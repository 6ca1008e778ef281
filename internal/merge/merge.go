// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates part files into one document via an external
// PDF utility. Utility absence is a reported, non-fatal condition: the
// unmerged parts always remain on disk when anything goes wrong.
package merge

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	binPdfunite = "pdfunite"
	binQpdf     = "qpdf"
)

// Tool concatenates PDF files.
type Tool interface {
	// Name returns the utility name ("pdfunite" or "qpdf").
	Name() string

	// Available reports whether the utility binary exists on PATH.
	Available() bool

	// Concat merges parts in order into out and deletes the parts on
	// success. On failure the parts are left untouched.
	Concat(parts []string, out string) error
}

// executor abstracts command execution and file removal for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	Remove(path string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) Remove(path string) error {
	return os.Remove(path)
}

// tool implements Tool for a specific binary. pdfunite and qpdf share the
// logic; they differ only in how the argument list is assembled.
type tool struct {
	bin  string
	args func(parts []string, out string) []string
	exec executor
}

func (t *tool) Name() string { return t.bin }

func (t *tool) Available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

func (t *tool) Concat(parts []string, out string) error {
	if len(parts) == 0 {
		return fmt.Errorf("nothing to merge")
	}
	if err := t.exec.RunSilent(t.bin, t.args(parts, out)...); err != nil {
		return fmt.Errorf("running %s: %w", t.bin, err)
	}
	for _, p := range parts {
		if err := t.exec.Remove(p); err != nil {
			return fmt.Errorf("removing merged part %s: %w", p, err)
		}
	}
	return nil
}

func newPdfunite(exec executor) *tool {
	return &tool{
		bin: binPdfunite,
		args: func(parts []string, out string) []string {
			return append(append([]string{}, parts...), out)
		},
		exec: exec,
	}
}

func newQpdf(exec executor) *tool {
	return &tool{
		bin: binQpdf,
		args: func(parts []string, out string) []string {
			args := []string{"--empty", "--pages"}
			args = append(args, parts...)
			return append(args, "--", out)
		},
		exec: exec,
	}
}

var defaultExec = &osExecutor{}

// DetectTool tries pdfunite first, falls back to qpdf. Returns an error
// if neither utility is on PATH.
func DetectTool() (Tool, error) {
	return detectTool(defaultExec)
}

func detectTool(exec executor) (Tool, error) {
	pdfunite := newPdfunite(exec)
	if pdfunite.Available() {
		return pdfunite, nil
	}

	qpdf := newQpdf(exec)
	if qpdf.Available() {
		return qpdf, nil
	}

	return nil, fmt.Errorf(
		"no PDF concatenation utility available: neither %s nor %s found on PATH",
		binPdfunite, binQpdf,
	)
}
