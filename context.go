// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package buildtool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mantaforge/buildtool/assetcache"
	"github.com/mantaforge/buildtool/buffer"
	"github.com/mantaforge/buildtool/internal/fsutil"
	"github.com/mantaforge/buildtool/internal/hashutil"
	"github.com/mantaforge/buildtool/objectc"
	"github.com/mantaforge/buildtool/shader/codegen"
	"github.com/mantaforge/buildtool/shader/parser"
	"github.com/mantaforge/buildtool/texture"
)

// Options configures one build invocation.
type Options struct {
	// AssetsRoot is the directory .texture/.object/.shader files are
	// gathered from, recursively.
	AssetsRoot string
	// OutputRoot is the directory the binary blob, generated source
	// files, and cache file are written to.
	OutputRoot string
	// Verbose enables info-level logging of pass lifecycle events.
	Verbose bool
}

// Context is the single value threaded through gather -> parse ->
// resolve -> validate -> codegen -> cache-write.
// One Context is constructed per Run; nothing it owns outlives that
// call.
type Context struct {
	Options Options
	Sink    *ErrorSink
	Cache   *assetcache.Cache
	Blob    *buffer.Buffer
}

// NewContext returns a fresh Context ready for Run. The cache and
// binary blob are empty until Run loads/fills them.
func NewContext(opts Options) *Context {
	return &Context{
		Options: opts,
		Sink:    NewErrorSink(),
		Cache:   assetcache.New(),
		Blob:    buffer.New(1 << 20),
	}
}

// ExitCode is the process exit code: 0 on success, 1 if any fatal
// error was recorded during Run.
func (c *Context) ExitCode() int { return c.Sink.ExitCode() }

func (c *Context) cachePath() string { return filepath.Join(c.Options.OutputRoot, "assets.cache") }
func (c *Context) blobPath() string  { return filepath.Join(c.Options.OutputRoot, "assets.bin") }

// prevBlobPath is the blob the texture pipeline splices cache hits
// from. It is the same file the previous build wrote to blobPath:
// runTextures always completes before writeBlob overwrites it, so
// reusing the path (rather than keeping a separate ".prev" copy) is
// safe within one Run.
func (c *Context) prevBlobPath() string { return c.blobPath() }

// Run executes one full build: texture pipeline, then object
// compiler, then shader cross-compiler, then the blob and cache
// writes. The first fatal error short-circuits the remaining passes.
func (c *Context) Run() error {
	if err := os.MkdirAll(c.Options.OutputRoot, 0o755); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: c.Options.OutputRoot, Reason: err.Error()})
	}

	if err := c.Cache.Read(c.cachePath()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: c.cachePath(), Reason: err.Error()})
	}

	if err := c.runTextures(); err != nil {
		return err
	}
	if c.Sink.Dirty() {
		return c.Sink.First()
	}

	if err := c.runObjects(); err != nil {
		return err
	}
	if c.Sink.Dirty() {
		return c.Sink.First()
	}

	if err := c.runShaders(); err != nil {
		return err
	}
	if c.Sink.Dirty() {
		return c.Sink.First()
	}

	if err := c.writeBlob(); err != nil {
		return err
	}
	if err := c.Cache.Write(c.cachePath()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: c.cachePath(), Reason: err.Error()})
	}

	Logger().Info("build complete", "exitCode", c.ExitCode())
	return nil
}

func (c *Context) runTextures() error {
	pipeline := &texture.Pipeline{
		Cache:        c.Cache,
		Blob:         c.Blob,
		AssetsRoot:   c.Options.AssetsRoot,
		PrevBlobPath: c.prevBlobPath(),
	}
	textures, err := pipeline.Build()
	if err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	Logger().Info("texture pipeline complete", "textures", len(textures))

	if err := writeFile(filepath.Join(c.Options.OutputRoot, "textures.generated.hpp"), texture.GenerateHeader(textures)); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	if err := writeFile(filepath.Join(c.Options.OutputRoot, "textures.generated.cpp"), texture.GenerateSource(textures)); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	return nil
}

func (c *Context) runObjects() error {
	out, err := objectc.Compile(c.Sink, c.Cache, c.Options.AssetsRoot)
	if err != nil {
		return err // already recorded by objectc.Compile via c.Sink
	}
	Logger().Info("object compiler complete", "objects", len(out.Sorted))

	files := map[string]string{
		"objects.system.generated.hpp":   out.SystemHeader,
		"objects.generated.hpp":          out.Header,
		"objects.generated.cpp":          out.Source,
		"objects.generated.intellisense": out.Intellisense,
	}
	for name, content := range files {
		if err := writeFile(filepath.Join(c.Options.OutputRoot, name), content); err != nil {
			return c.Sink.Fatal(&BuildError{Kind: KindIO, File: name, Reason: err.Error()})
		}
	}
	return nil
}

// runShaders gathers every *.shader file, parses and HLSL-codegens
// each independently, and concatenates the results into the three
// shaders.generated.* outputs. One shader file's
// syntax/semantic error is fatal for the whole pass, matching the
// "first error wins" policy.
func (c *Context) runShaders() error {
	files, err := fsutil.DirectoryIterate(c.Options.AssetsRoot, "shader", true)
	if err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: "gather .shader files: " + err.Error()})
	}

	target, err := codegen.For(codegen.HLSL)
	if err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindInvariant, Reason: err.Error()})
	}

	var source, layout, reflection strings.Builder
	source.WriteString("// Code generated by the shader cross-compiler. DO NOT EDIT.\n\n")
	layout.WriteString("// Code generated by the shader cross-compiler. DO NOT EDIT.\n\n")

	// Generated output is cached per file: an unchanged .shader skips
	// lex/parse/codegen entirely and only the concatenation below runs.
	type shaderUnit struct {
		Source, InputLayout, ReflectionHPP string
	}

	for _, fi := range files {
		data, err := os.ReadFile(fi.AbsPath)
		if err != nil {
			return c.Sink.Fatal(&BuildError{Kind: KindIO, File: fi.Path, Reason: err.Error()})
		}
		fileHash := hashutil.HashBytes64(data)
		key := assetcache.Key(hashutil.Mix64(hashutil.HashString64(fi.Path), fileHash))

		var unit shaderUnit
		if !assetcache.Fetch(c.Cache, key, fileHash, &unit) {
			sh, err := parser.Parse(fi.Path, data)
			if err != nil {
				return c.Sink.Fatal(&BuildError{Kind: KindSyntax, File: fi.Path, Reason: err.Error()})
			}
			out, err := target.Generate(sh)
			if err != nil {
				return c.Sink.Fatal(&BuildError{Kind: KindSemantic, File: fi.Path, Reason: err.Error()})
			}
			unit = shaderUnit{Source: out.Source, InputLayout: out.InputLayout, ReflectionHPP: out.ReflectionHPP}
			if err := assetcache.Store(c.Cache, key, fileHash, unit); err != nil {
				return c.Sink.Fatal(&BuildError{Kind: KindIO, File: fi.Path, Reason: err.Error()})
			}
		}

		fmt.Fprintf(&source, "// --- %s ---\n%s\n", fi.Path, unit.Source)
		fmt.Fprintf(&layout, "// --- %s ---\n%s\n", fi.Path, unit.InputLayout)
		reflection.WriteString(unit.ReflectionHPP)
	}
	Logger().Info("shader cross-compiler complete", "shaders", len(files))

	if err := writeFile(filepath.Join(c.Options.OutputRoot, "shaders.generated.hlsl"), source.String()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	if err := writeFile(filepath.Join(c.Options.OutputRoot, "shaders.generated.layout.hpp"), layout.String()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	if err := writeFile(filepath.Join(c.Options.OutputRoot, "shaders.generated.reflection.hpp"), reflection.String()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, Reason: err.Error()})
	}
	return nil
}

// writeBlob persists the binary blob atomically: write to a temp file
// in the same directory, then rename over blobPath, so a crash mid-
// write never corrupts the blob a subsequent build's cache hits would
// splice from.
func (c *Context) writeBlob() error {
	tmp := c.blobPath() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: tmp, Reason: err.Error()})
	}
	if _, err := c.Blob.WriteTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: tmp, Reason: err.Error()})
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: tmp, Reason: err.Error()})
	}
	if err := os.Rename(tmp, c.blobPath()); err != nil {
		return c.Sink.Fatal(&BuildError{Kind: KindIO, File: c.blobPath(), Reason: err.Error()})
	}
	return nil
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
