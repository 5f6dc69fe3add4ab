package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/forgeui/b64pack/b64file"
)

func prompt(r *bufio.Reader, question string) string {
	fmt.Print(question)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptYesNo(r *bufio.Reader, question string) bool {
	answer := strings.ToLower(prompt(r, question))
	return answer == "yes" || answer == "y"
}

func promptPath(kind string) string {
	r := bufio.NewReader(os.Stdin)
	return prompt(r, fmt.Sprintf("Enter the path to your %s file or folder: ", kind))
}

// promptCSSOptions asks for the input path and the pipeline choices,
// falling back to brotli on an unknown compression type and to no
// archival on an unknown archive type.
func promptCSSOptions() (string, *b64file.PackOption) {
	r := bufio.NewReader(os.Stdin)
	path := prompt(r, "Enter the path to your CSS file or folder: ")
	opt := &b64file.PackOption{CompressType: b64file.BROTLI}
	opt.Minify = promptYesNo(r, "Do you want to minify the CSS files? (yes/no): ")
	opt.Compress = promptYesNo(r, "Do you want to compress the CSS files? (yes/no): ")
	archive := promptYesNo(r, "Do you want to archive the files? (yes/no): ")
	if opt.Compress {
		name := strings.ToLower(prompt(r, "Choose compression type (zlib/gzip/brotli): "))
		ct, ok := b64file.CompressTypes[name]
		if !ok {
			fmt.Println("Invalid compression type. Defaulting to brotli.")
			ct = b64file.BROTLI
		}
		opt.CompressType = ct
	}
	if archive {
		name := strings.ToLower(prompt(r, "Choose archival type (xz(highest compression)/lzma): "))
		at, ok := b64file.ArchiveTypes[name]
		if !ok {
			fmt.Println("Invalid archival type. No archival will be applied.")
			at = b64file.ArchiveNone
		}
		opt.ArchiveType = at
	}
	return path, opt
}
