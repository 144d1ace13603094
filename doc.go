// File: hoplite/doc.go

// Package hoplite loads application configuration from layered sources
// into plain Go structs, reporting every problem in one pass instead of
// failing at the first bad value.
//
// Features:
//   - Multiple sources with fixed precedence: environment variables,
//     --config.override. process arguments, a per-user settings file,
//     then explicitly registered files and embedded resources
//   - TOML, YAML, JSON and properties/dotenv parsers, extensible per
//     file extension
//   - Deep fallback merging: higher-priority sources win per key, maps
//     union recursively, absent keys fall through to lower sources
//   - Error accumulation: a load reports all failures with their
//     dotted path and originating source, not just the first
//   - Struct tags for renaming (`config:"..."`), defaults
//     (`default:"3"`) and closed constant sets (`enum:"RED,GREEN"`)
//   - Key-spelling mappers bridging camelCase fields to snake_case
//     files and UPPER_SNAKE environment variables
//   - time.Duration, time.Time, net.IP, *url.URL and masked Secret
//     values decoded out of the box; custom Decoder and Parser hooks
//   - Immutable Loader: every With method returns a copy, safe to
//     share and fork
//
// Quick Start:
//
//	type Config struct {
//	    Server struct {
//	        Host string `config:"host"`
//	        Port int    `config:"port" default:"8080"`
//	    } `config:"server"`
//	    Color string `config:"color" enum:"RED,GREEN,BLUE"`
//	}
//
//	cfg, err := hoplite.Quick[Config]("config.toml")
//	if err != nil {
//	    log.Fatal(err) // one report listing every bad value
//	}
//
// Default Precedence (highest to lowest):
//  1. Environment variables
//  2. Process arguments (--config.override.server.port=9090)
//  3. User settings file ($HOME/.userconfig.toml, .yaml, ...)
//  4. Registered files and resources, in the order added
//
// Custom stacks drop or reorder the defaults:
//
//	loader := hoplite.New().
//	    WithSources(hoplite.EnvSource().WithPrefix("MYAPP_").WithNesting()).
//	    WithFiles("prod.toml", "base.toml").
//	    WithPreprocessor(hoplite.EnvExpand())
//
//	var cfg Config
//	if err := loader.Scan(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Thread Safety:
// A Loader is immutable after construction; loads share no mutable
// state and may run concurrently.
package hoplite
