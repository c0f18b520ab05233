// Command buildtool runs the asset build pipeline over a tree of
// *.texture, *.object, and *.shader files and emits the generated C++
// sources, binary blob, and cache file a game build links against.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	buildtool "github.com/mantaforge/buildtool"
)

func main() {
	configPath := flag.String("config", "buildtool.toml", "optional TOML file supplying defaults for -assets/-output/-verbose")
	assets := flag.String("assets", "", "root directory to gather .texture/.object/.shader files from (default \"assets\")")
	output := flag.String("output", "", "directory generated sources, the binary blob, and the cache file are written to (default \"generated\")")
	verbose := flag.Bool("verbose", false, "log pass lifecycle events to stderr")
	flag.Parse()

	cfg, err := buildtool.LoadFileConfig(*configPath)
	if err != nil {
		log.Fatalf("load %s: %v", *configPath, err)
	}

	// CLI flags override the config file; an unset flag (empty string,
	// for the two path flags) falls back to the file, then a hardcoded
	// default. -verbose has no "unset" state, so the file only supplies
	// it when the flag was left at its zero value.
	if *assets == "" {
		*assets = cfg.AssetsRoot
	}
	if *assets == "" {
		*assets = "assets"
	}
	if *output == "" {
		*output = cfg.OutputRoot
	}
	if *output == "" {
		*output = "generated"
	}
	if !*verbose {
		*verbose = cfg.Verbose
	}

	if *verbose {
		buildtool.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	}

	ctx := buildtool.NewContext(buildtool.Options{
		AssetsRoot: *assets,
		OutputRoot: *output,
		Verbose:    *verbose,
	})

	if err := ctx.Run(); err != nil {
		log.Printf("build failed: %v", err)
	}
	os.Exit(ctx.ExitCode())
}
