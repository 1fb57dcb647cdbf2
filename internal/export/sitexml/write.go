package sitexml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

var ErrWriteFailure = errors.New("write site config")

type WriteOptions struct {
	Logger hclog.Logger
}

// Write renders every document and places them in outDir as <name>.xml,
// overwriting existing files. Nothing is written unless all documents render.
// Files are staged as temp files first and renamed once all of them are on
// disk; staged files are removed on failure. The renames are not atomic as a
// set: if one fails, the files renamed before it stay replaced and are the
// paths returned alongside the error.
func Write(docs []Document, outDir string, opts WriteOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if outDir == "" {
		outDir = "."
	}

	rendered := make([][]byte, len(docs))
	seen := map[string]bool{}
	for i, doc := range docs {
		if seen[doc.FileName()] {
			return nil, fmt.Errorf("render %s: duplicate output file %s", doc.Name, doc.FileName())
		}
		seen[doc.FileName()] = true
		data, err := Render(doc)
		if err != nil {
			return nil, err
		}
		rendered[i] = data
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", ErrWriteFailure, outDir, err)
	}

	var staged []string
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}
	for i, doc := range docs {
		tmp, err := stage(outDir, doc.FileName(), rendered[i])
		if err != nil {
			cleanup()
			return nil, err
		}
		staged = append(staged, tmp)
		logger.Trace("staged site file", "file", doc.FileName(), "tmp", tmp)
	}

	paths := make([]string, 0, len(docs))
	for i, doc := range docs {
		path := filepath.Join(outDir, doc.FileName())
		if err := os.Rename(staged[i], path); err != nil {
			cleanup()
			return paths, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
		}
		paths = append(paths, path)
		logger.Debug("wrote site file", "path", path, "bytes", len(rendered[i]))
	}
	return paths, nil
}

func stage(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, name, err)
	}
	tmp := f.Name()
	defer f.Close()

	fail := func(err error) (string, error) {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fail(err)
	}
	if err := f.Chmod(0644); err != nil {
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	return tmp, nil
}
