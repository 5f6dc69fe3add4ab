package b64file

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/forgeui/b64pack/workers"
)

// ResolveInput maps the interactive path shorthand onto a root and a
// recursion mode: ".." means the current directory walked recursively,
// "." means the current directory one layer deep, anything else is
// taken as-is and walked recursively.
func ResolveInput(path string) (string, bool) {
	switch path {
	case "..":
		return ".", true
	case ".":
		return ".", false
	default:
		return path, true
	}
}

// ProcessPath applies process to one file, or to every file under a
// directory whose extension is in exts. Directory walks are fed to a
// worker pool of opt.WorkerCount workers (NumCPU when not positive).
func ProcessPath(root string, exts map[string]bool, opt *PackOption, process func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", root, err)
	}
	if !info.IsDir() {
		if !exts[strings.ToLower(filepath.Ext(root))] {
			return fmt.Errorf("unsupported file type: %s", filepath.Ext(root))
		}
		return process(root)
	}

	workerCount := opt.WorkerCount
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	ch := make(chan string, workerCount*3)

	var processed, failed int64
	elapsed := workers.RunJobs(workerCount, func(no int) {
		for path := range ch {
			LogDebug("[%d] process file %s", no, path)
			if err := process(path); err != nil {
				atomic.AddInt64(&failed, 1)
				LogError("[%d] %s: %v", no, path, err)
				continue
			}
			atomic.AddInt64(&processed, 1)
		}
	}, func() {
		defer close(ch)
		searchFiles(root, exts, opt.Recursive, ch)
	})

	if processed == 0 && failed == 0 {
		LogInfo("no matching files found in %s", root)
		return nil
	}
	LogInfo("%d files done in %s", processed, elapsed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, processed+failed)
	}
	return nil
}

// searchFiles queues every regular file under root whose extension is
// in exts. When recursive is false only the first directory layer is
// visited.
func searchFiles(root string, exts map[string]bool, recursive bool, ch chan<- string) {
	LogDebug("searching files in %s", root)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			LogWarn("skip %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			// a file error must not drop its siblings
			return nil
		}
		if d.IsDir() {
			if !recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !exts[strings.ToLower(filepath.Ext(path))] {
			LogDebug("%s skipped", path)
			return nil
		}
		ch <- path
		return nil
	})
	if err != nil {
		LogError("walk %s: %v", root, err)
	}
}
