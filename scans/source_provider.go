package scans

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/moneytech/wrenalyzer/logs"
	"github.com/moneytech/wrenalyzer/wren"
	"github.com/reusee/dscope"
)

// SourceProvider turns the -file arguments into source files: directories
// are walked breadth first, hidden entries are skipped, the name filter is
// applied, and binary content is sniffed out.
type SourceProvider struct {
	NameMatch dscope.Inject[NameMatch]
	Logger    dscope.Inject[logs.Logger]
	Files     dscope.Inject[Files]
}

func (p SourceProvider) RootPaths() ([]string, error) {
	if files := p.Files(); len(files) > 0 {
		return []string(files), nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return []string{
		dir,
	}, nil
}

func (p SourceProvider) IterSources() iter.Seq2[*wren.SourceFile, error] {
	return func(yield func(*wren.SourceFile, error) bool) {
		queue, err := p.RootPaths()
		if err != nil {
			yield(nil, err)
			return
		}

		handlePath := func(path string) (stop bool, err error) {
			baseName := filepath.Base(path)

			// ignore hidden files
			if baseName != "." && strings.HasPrefix(baseName, ".") {
				return false, nil
			}

			file, err := os.Open(path)
			if err != nil {
				return false, err
			}
			defer file.Close()

			stat, err := file.Stat()
			if err != nil {
				return false, err
			}

			if stat.IsDir() {
				// queue dir files
				entries, err := file.ReadDir(0)
				if err != nil {
					return false, err
				}
				for _, entry := range entries {
					queue = append(queue, filepath.Join(path, entry.Name()))
				}

			} else {
				// plain file

				if !p.NameMatch()(path) {
					return false, nil
				}

				content, err := io.ReadAll(file)
				if err != nil {
					return false, err
				}

				// an empty file is still source; sniff only when there are
				// bytes to sniff
				if len(content) > 0 {
					isText := false
					for t := mimetype.Detect(content); t != nil; t = t.Parent() {
						if t.Is("text/plain") {
							isText = true
							break
						}
					}
					if !isText {
						p.Logger().Debug("skip non-text file",
							"path", path,
						)
						return false, nil
					}
				}

				if !yield(wren.NewSourceFile(path, string(content)), nil) {
					return true, nil
				}

			}

			return false, nil
		}

		for len(queue) > 0 {
			path := queue[0]
			queue = queue[1:]
			if stop, err := handlePath(path); err != nil {
				yield(nil, err)
				return
			} else if stop {
				break
			}
		}

	}
}

func (Module) SourceProvider(
	inject dscope.InjectStruct,
) (ret SourceProvider) {
	inject(&ret)
	return
}
