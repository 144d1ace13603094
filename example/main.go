// File: hoplite/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Masses/hoplite"
)

type DatabaseConfig struct {
	Host     string         `config:"host"`
	Port     int64          `config:"port" default:"5432"`
	User     string         `config:"user"`
	Password hoplite.Secret `config:"password"`
}

type AppConfig struct {
	Host     string         `config:"host"`
	Port     int64          `config:"port" default:"8080"`
	Timeout  time.Duration  `config:"timeout" default:"30s"`
	LogLevel string         `config:"log_level" enum:"debug,info,warn,error" default:"info"`
	Tags     []string       `config:"tags"`
	Database DatabaseConfig `config:"database"`
}

const configContent = `
host = "api.internal"
tags = ["edge", "eu-west"]

[database]
host = "db.internal"
user = "svc-api"
password = "hunter2"
`

func main() {
	dir, err := os.MkdirTemp("", "hoplite-example")
	if err != nil {
		log.Fatalf("temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	configPath := filepath.Join(dir, "app.toml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		log.Fatalf("write config: %v", err)
	}

	// One call with the default stack: env, --config.override. args,
	// the user settings file, then app.toml.
	cfg, err := hoplite.Quick[AppConfig](configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	fmt.Println("Loaded configuration:")
	fmt.Printf("  server:   %s:%d (timeout %s, log level %s)\n", cfg.Host, cfg.Port, cfg.Timeout, cfg.LogLevel)
	fmt.Printf("  tags:     %v\n", cfg.Tags)
	fmt.Printf("  database: %s@%s:%d\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port)

	// Secrets stay masked in any printed output; Reveal reads the value
	// where it is actually needed.
	fmt.Printf("  password: %v (len %d)\n", cfg.Database.Password, len(cfg.Database.Password.Reveal()))

	// An explicit stack makes precedence visible: the override argument
	// beats the file, the environment beats both.
	os.Setenv("DEMO_LOG_LEVEL", "debug")
	loader := hoplite.New().
		WithSources(
			hoplite.EnvSource().WithPrefix("DEMO_").WithNesting(),
			hoplite.OverridesSource("--config.override.port=9090"),
		).
		WithFiles(configPath)

	cfg, err = hoplite.LoadAs[AppConfig](loader)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	fmt.Println("\nWith DEMO_LOG_LEVEL=debug and --config.override.port=9090:")
	fmt.Printf("  port:      %d\n", cfg.Port)
	fmt.Printf("  log level: %s\n", cfg.LogLevel)

	// Sections of a larger document load independently.
	var db DatabaseConfig
	if err := loader.ScanAt("database", &db); err != nil {
		log.Fatalf("load database section: %v", err)
	}
	fmt.Printf("\nDatabase section alone: %s@%s:%d\n", db.User, db.Host, db.Port)

	// The merged tree can be dumped to see which source won each key.
	fmt.Println("\nMerged configuration:")
	if err := loader.Dump(os.Stdout); err != nil {
		log.Fatalf("dump: %v", err)
	}

	// Bad values are all reported at once, with path and origin.
	badPath := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(badPath, []byte("port = \"not-a-port\"\nlog_level = \"loud\"\n"), 0644); err != nil {
		log.Fatalf("write config: %v", err)
	}
	if _, err := hoplite.LoadAs[AppConfig](hoplite.New().WithSources().WithFiles(badPath)); err != nil {
		fmt.Println("\nLoading a broken file reports every problem:")
		fmt.Println(err)
	}
}
