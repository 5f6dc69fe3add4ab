package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/forgeui/b64pack/b64file"
	"github.com/forgeui/b64pack/version"
)

type CssCmd struct {
	Path       string `arg:"" optional:"" help:"css file or directory; '.' is the current directory one layer deep, '..' the current directory recursively; prompts when omitted"`
	NoMinify   bool   `help:"skip css minification" default:"false"`
	NoCompress bool   `help:"skip compression" default:"false"`
	Archive    string `short:"a" help:"archive the source file after encoding" enum:"none,xz,lzma" default:"none"`
}

type ZlibCmd struct {
	Path string `arg:"" optional:"" help:"css file or directory; prompts when omitted"`
}

type MediaCmd struct {
	Path string `arg:"" optional:"" help:"media file or directory; prompts when omitted"`
}

type DecodeCmd struct {
	Path string `arg:"" help:".b64 file to decode"`
}

type VersionCmd struct {
}

var client struct {
	CompressType string     `short:"z" help:"compression type" enum:"brotli,br,zlib,gzip,bzip2,bz2,lz4,xz,none" default:"brotli"`
	Quiet        bool       `short:"q" help:"only report warnings and errors" default:"false"`
	Debug        bool       `short:"d" help:"debug output" default:"false"`
	WorkerCount  int        `short:"w" help:"number of workers, when 0 or negative number of system processors will be used" default:"0"`
	Version      VersionCmd `cmd:"" help:"print version" default:"withargs"`
	Css          CssCmd     `cmd:"" aliases:"c" help:"minify, compress and Base64-encode css files"`
	Zlib         ZlibCmd    `cmd:"" aliases:"s" help:"zlib-compress and Base64-encode css files"`
	Media        MediaCmd   `cmd:"" aliases:"m" help:"Base64-encode media files"`
	Decode       DecodeCmd  `cmd:"" aliases:"dec" help:"decode a .b64 file back to its source bytes"`
}

func runCSS() error {
	path := client.Css.Path
	var opt *b64file.PackOption
	if path == "" {
		path, opt = promptCSSOptions()
	} else {
		opt = &b64file.PackOption{
			Minify:       !client.Css.NoMinify,
			Compress:     !client.Css.NoCompress,
			CompressType: b64file.CompressTypes[client.CompressType],
			ArchiveType:  b64file.ArchiveTypes[client.Css.Archive],
		}
	}
	root, recursive := b64file.ResolveInput(path)
	opt.Recursive = recursive
	opt.WorkerCount = client.WorkerCount
	err := b64file.ProcessPath(root, b64file.CSSExtensions, opt, func(p string) error {
		return b64file.ProcessCSS(p, opt)
	})
	if err != nil {
		return err
	}
	fmt.Println("Compression complete! Base64 output '.b64' files have been created.")
	return nil
}

func runZlib() error {
	path := client.Zlib.Path
	if path == "" {
		path = promptPath("CSS")
	}
	root, recursive := b64file.ResolveInput(path)
	opt := &b64file.PackOption{Recursive: recursive, WorkerCount: client.WorkerCount}
	err := b64file.ProcessPath(root, b64file.CSSExtensions, opt, b64file.ProcessZlib)
	if err != nil {
		return err
	}
	fmt.Println("Compression complete! Base64 output '.b64' files have been created.")
	return nil
}

func runMedia() error {
	path := client.Media.Path
	if path == "" {
		path = promptPath("media")
	}
	root, recursive := b64file.ResolveInput(path)
	opt := &b64file.PackOption{Recursive: recursive, WorkerCount: client.WorkerCount}
	return b64file.ProcessPath(root, b64file.MediaExtensions, opt, b64file.ProcessMedia)
}

func runDecode() error {
	return b64file.DecodeFile(client.Decode.Path, b64file.CompressTypes[client.CompressType])
}

func main() {
	ctx := kong.Parse(&client)
	if client.Debug {
		b64file.SetGlobalLogLevel(b64file.DEBUG)
	} else if client.Quiet {
		b64file.SetGlobalLogLevel(b64file.WARN)
	}

	var err error
	switch ctx.Command() {
	case "css", "css <path>":
		err = runCSS()
	case "zlib", "zlib <path>":
		err = runZlib()
	case "media", "media <path>":
		err = runMedia()
	case "decode <path>":
		err = runDecode()
	default:
		fmt.Println(version.BuildVersion())
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
