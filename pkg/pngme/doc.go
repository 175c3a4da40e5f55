/*
Package pngme provides file-level operations on the chunks of PNG files.

Each function opens a file, runs one operation from package png, and, for
edits, writes the result back atomically (temp file, fsync, rename).

# Quick Start

Hide a message in a private chunk, read it back, and remove it:

	err := pngme.Encode("photo.png", "ruSt", "meet at noon", nil)
	msg, err := pngme.Decode("photo.png", "ruSt")
	_, err = pngme.Remove("photo.png", "ruSt", nil)

Write the edited file elsewhere and keep a backup of the original:

	opts := &pngme.EncodeOptions{OutputPath: "out.png"}
	err := pngme.Encode("photo.png", "ruSt", "meet at noon", opts)

# Inspection

	summaries, err := pngme.List("photo.png")
	info, err := pngme.Stats("photo.png") // size, BLAKE3 digest, chunk counts
	err = pngme.Validate("photo.png")

# Text Chunks

	err := pngme.AddText("photo.png", "Author", "someone", &pngme.TextOptions{Compress: true})
	entries, err := pngme.ListText("photo.png")

# Errors

Errors wrap *types.Error values, so callers can branch with errors.Is:

	if errors.Is(err, types.ErrNotFound) { ... }
*/
package pngme
