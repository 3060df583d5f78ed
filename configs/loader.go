package configs

import (
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads a fixed list of CUE files once, validates each against an
// optional closed schema, and serves path lookups over them in file order.
type Loader struct {
	load func() ([]source, error)
}

type source struct {
	path  string
	value cue.Value
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		load: sync.OnceValues(func() ([]source, error) {
			ctx := cuecontext.New()

			schema, err := compileSchema(ctx, schemaSrc)
			if err != nil {
				return nil, err
			}

			var sources []source
			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}

				// the schema is closed, so unknown fields fail here
				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				sources = append(sources, source{
					path:  filePath,
					value: value,
				})
			}

			return sources, nil
		}),
	}
}

func compileSchema(ctx *cue.Context, src string) (cue.Value, error) {
	if src == "" {
		return cue.Value{}, nil
	}
	schema := ctx.CompileString("close({" + src + "})")
	if err := schema.Err(); err != nil {
		return cue.Value{}, err
	}
	return schema, nil
}

// IterCueValues yields, in file order, the value at path from every file
// that defines it.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		sources, err := l.load()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, source := range sources {
			value := source.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first definition of path into target, or returns
// ErrValueNotFound when no file defines it.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
