package b64file

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// OutputExtension is appended to every processed file name.
const OutputExtension = ".b64"

var ErrNotEncoded = errors.New("input is not a " + OutputExtension + " file")

// PackOption controls how files are turned into .b64 artifacts.
type PackOption struct {
	Minify       bool // minify CSS before encoding
	Compress     bool
	CompressType int
	ArchiveType  int // ArchiveNone to skip archival of the source file
	Recursive    bool
	WorkerCount  int
}

// CSSExtensions are the extensions the CSS pipelines accept.
var CSSExtensions = map[string]bool{
	".css": true,
}

// MediaExtensions are the extensions the media pipeline accepts.
var MediaExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".mp3":  true,
	".mp4":  true,
	".webm": true,
	".md":   true,
}

// ProcessCSS runs the full CSS pipeline on one file: optional minify,
// optional compression, Base64 encode, write <path>.b64, then optional
// archival of the source.
func ProcessCSS(path string, opt *PackOption) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if opt.Minify {
		data = []byte(Minify(string(data)))
	}
	if opt.Compress {
		if data, err = Compress(data, opt.CompressType); err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}
	}
	if err = writeEncoded(path, data); err != nil {
		return err
	}
	if opt.ArchiveType != ArchiveNone {
		if err = Archive(path, opt.ArchiveType); err != nil {
			return fmt.Errorf("archive %s: %w", path, err)
		}
		LogInfo("archived file: %s", path)
	}
	return nil
}

// ProcessZlib is the simplified CSS pipeline: zlib compression and
// Base64 encoding only, no minification, no archival.
func ProcessZlib(path string) error {
	return ProcessCSS(path, &PackOption{Compress: true, CompressType: ZLIB})
}

// ProcessMedia Base64-encodes one media file as-is.
func ProcessMedia(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return writeEncoded(path, data)
}

// DecodeFile reverses the pipeline for one .b64 file: Base64 decode,
// decompress with the given type, write the original file name.
// Minification is not reversible.
func DecodeFile(path string, compressType int) error {
	out := strings.TrimSuffix(path, OutputExtension)
	if out == path {
		return ErrNotEncoded
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	data, err := DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if data, err = Decompress(data, compressType); err != nil {
		return fmt.Errorf("decompress %s: %w", path, err)
	}
	if err = os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	LogInfo("decoded %s -> %s", path, out)
	return nil
}

func writeEncoded(path string, data []byte) error {
	out := path + OutputExtension
	if err := os.WriteFile(out, []byte(EncodeToString(data)), 0644); err != nil {
		return err
	}
	LogInfo("processed file: %s -> %s", path, out)
	return nil
}
