package objectc

import (
	"os"

	"github.com/mantaforge/buildtool/assetcache"
	"github.com/mantaforge/buildtool/diag"
	"github.com/mantaforge/buildtool/internal/fsutil"
	"github.com/mantaforge/buildtool/internal/hashutil"
)

// Output bundles the four generated files the object compiler
// produces.
type Output struct {
	SystemHeader string
	Header       string
	Source       string
	Intellisense string
	Sorted       []*ObjectFile
}

// Compile gathers every *.object file under root, parses, resolves,
// validates, and emits the four generated outputs. Any
// failure is reported through sink and returned as a *diag.BuildError,
// matching the "first error wins" driver contract.
//
// Parsed per-file units are cached through cache (when non-nil) keyed
// by mix(pathHash, fileHash), so an unchanged .object file skips
// re-tokenization and re-parsing; resolution, validation, and
// emission are whole-program passes and always run over the full set,
// since a neighbor's change can reshape the inheritance DAG even when
// this file didn't change.
func Compile(sink *diag.ErrorSink, cache *assetcache.Cache, root string) (*Output, error) {
	files, err := fsutil.DirectoryIterate(root, "object", true)
	if err != nil {
		return nil, sink.Fatal(&diag.BuildError{
			Kind: diag.KindIO, File: root, Reason: "gather .object files: " + err.Error(),
		})
	}

	parsed := make([]*ObjectFile, 0, len(files))
	for _, fi := range files {
		data, err := os.ReadFile(fi.AbsPath)
		if err != nil {
			return nil, sink.Fatal(&diag.BuildError{
				Kind: diag.KindIO, File: fi.Path, Reason: err.Error(),
			})
		}
		fileHash := hashutil.HashBytes64(data)
		key := assetcache.Key(hashutil.Mix64(hashutil.HashString64(fi.Path), fileHash))

		if cache != nil {
			var cached ObjectFile
			if assetcache.Fetch(cache, key, fileHash, &cached) {
				of := cached
				parsed = append(parsed, &of)
				continue
			}
		}

		of, err := Parse(fi.Path, data)
		if err != nil {
			return nil, sink.Fatal(&diag.BuildError{
				Kind: diag.KindUserData, File: fi.Path, Reason: err.Error(),
			})
		}
		if cache != nil {
			// Stored before Resolve links Parent/Children, so the
			// encoded unit carries no cross-object references.
			if err := assetcache.Store(cache, key, fileHash, *of); err != nil {
				return nil, sink.Fatal(&diag.BuildError{Kind: diag.KindIO, File: fi.Path, Reason: err.Error()})
			}
		}
		parsed = append(parsed, of)
	}

	sorted, err := Resolve(parsed)
	if err != nil {
		return nil, sink.Fatal(&diag.BuildError{Kind: diag.KindUserData, Reason: err.Error()})
	}
	if err := Validate(sorted); err != nil {
		return nil, sink.Fatal(&diag.BuildError{Kind: diag.KindUserData, Reason: err.Error()})
	}

	diag.Logger().Info("objectc: compiled", "objects", len(sorted))

	return &Output{
		SystemHeader: GenerateSystemHeader(sorted),
		Header:       GenerateHeader(sorted),
		Source:       GenerateSource(sorted),
		Intellisense: GenerateIntellisense(sorted),
		Sorted:       sorted,
	}, nil
}
