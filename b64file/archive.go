package b64file

import (
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

const (
	ArchiveNone = iota
	ArchiveXZ
	ArchiveLZMA
)

var ArchiveTypes = map[string]int{
	"xz":   ArchiveXZ,
	"lzma": ArchiveLZMA,
}

var archiveExtensions = map[int]string{
	ArchiveXZ:   ".xz",
	ArchiveLZMA: ".lzma",
}

// Archive writes the source file into a sibling compressed archive,
// <path>.xz or <path>.lzma depending on archiveType. ArchiveNone is a no-op.
func Archive(path string, archiveType int) error {
	if archiveType == ArchiveNone {
		return nil
	}
	ext, ok := archiveExtensions[archiveType]
	if !ok {
		return fmt.Errorf("unknown archive type %d", archiveType)
	}
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := os.OpenFile(path+ext, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	var w io.WriteCloser
	if archiveType == ArchiveLZMA {
		w, err = lzma.NewWriter(dst)
	} else {
		w, err = xz.NewWriter(dst)
	}
	if err != nil {
		_ = dst.Close()
		return err
	}
	if _, err = io.Copy(w, src); err != nil {
		_ = w.Close()
		_ = dst.Close()
		return err
	}
	if err = w.Close(); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
