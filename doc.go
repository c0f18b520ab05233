// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package buildtool is the offline asset and code-generation pipeline
// for the engine: it turns human-authored source assets (textures,
// object definitions, shaders) into a single runtime binary blob plus
// generated C++-style declarations that the runtime links against.
//
// # Architecture
//
// The pipeline is single-threaded and synchronous. A [Context] is
// constructed once per build, threaded through every pass, and
// discarded at the end — there is no cross-run retained state.
//
//	ctx := buildtool.NewContext(buildtool.Options{AssetsRoot: "assets", OutputRoot: "generated", Verbose: true})
//	ctx.Run()
//	os.Exit(ctx.ExitCode())
//
// # Sub-packages
//
//   - pixelformat: color format table and mip-chain generation
//   - atlas: guillotine bin-packer for texture atlases
//   - texture: .texture asset parsing, atlas/standalone image build
//   - objectc: the keyword-driven object-definition compiler
//   - shader/lexer, shader/parser, shader/codegen/hlsl: the shader
//     cross-compiler front end and HLSL back end
//   - assetcache: content-addressed cache façade shared by every pass
//   - buffer: the append-only binary blob writer
package buildtool
