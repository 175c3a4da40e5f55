package pngme

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/pngkit/internal/logger"
	"github.com/joshuapare/pngkit/internal/mmfile"
	"github.com/joshuapare/pngkit/internal/writer"
	"github.com/joshuapare/pngkit/png"
)

// readFile maps path and returns a private copy of its contents.
func readFile(path string) ([]byte, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("png file not found: %s", path)
	}
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer func() { _ = release() }()
	return append([]byte(nil), data...), nil
}

// Open reads and parses the PNG file at path.
func Open(path string) (*png.PNG, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := png.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	logger.L.Debug("opened png", "path", path, "bytes", len(data), "chunks", p.Len())
	return p, nil
}

// save writes p according to opts.
func save(path string, p *png.PNG, opts *OperationOptions) error {
	if opts == nil {
		opts = &OperationOptions{}
	}
	if opts.DryRun {
		logger.L.Debug("dry run, not writing", "path", path)
		return nil
	}
	out := p.Bytes()
	if opts.Sink != nil {
		return opts.Sink.WritePNG(out)
	}

	dst := path
	if opts.OutputPath != "" {
		dst = opts.OutputPath
	}
	if opts.CreateBackup && dst == path {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup at %s: %w", backupPath, err)
		}
		logger.L.Debug("backup written", "path", backupPath)
	}
	w := &writer.FileWriter{Path: dst}
	if err := w.WritePNG(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	logger.L.Debug("wrote png", "path", dst, "bytes", len(out), "chunks", p.Len())
	return nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}

	return dstFile.Close()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
