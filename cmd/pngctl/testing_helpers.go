package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/pngkit/png"
)

// writeTestPNG writes a 1x1 greyscale PNG holding the given extra chunks
// before IEND and returns its path.
func writeTestPNG(t *testing.T, extra ...*png.Chunk) string {
	t.Helper()
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], 1)
	binary.BigEndian.PutUint32(ihdr[4:], 1)
	ihdr[8] = 8

	head, err := png.NewChunk(png.TypeIHDR, ihdr)
	if err != nil {
		t.Fatalf("IHDR: %v", err)
	}
	end, err := png.NewChunk(png.TypeIEND, nil)
	if err != nil {
		t.Fatalf("IEND: %v", err)
	}
	chunks := append([]*png.Chunk{head}, extra...)
	chunks = append(chunks, end)

	path := filepath.Join(t.TempDir(), "test.png")
	if err := os.WriteFile(path, png.FromChunks(chunks).Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// messageChunk builds a chunk of type typ holding msg.
func messageChunk(t *testing.T, typ, msg string) *png.Chunk {
	t.Helper()
	c, err := png.NewChunk(png.MustParseChunkType(typ), []byte(msg))
	if err != nil {
		t.Fatalf("chunk %s: %v", typ, err)
	}
	return c
}

// resetFlags restores global and per-command flag variables to defaults.
func resetFlags() {
	verbose, quiet, jsonOut = false, false, false
	encodeBackup, encodeDryRun = false, false
	removeBackup, removeDryRun = false, false
	textCompress, textITXt, textBackup, textDryRun = false, false, false, false
	textLanguage, textTranslated = "", ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON and returns it decoded
func assertJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
