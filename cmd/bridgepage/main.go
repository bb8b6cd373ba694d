package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	bridgepage "github.com/goliatone/go-bridgepage"
	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/internal/markdown"
	"github.com/goliatone/go-bridgepage/publisher"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("bridgepage: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bridgepage", flag.ExitOnError)
	input := fs.String("input", "", "Path to a page definition (.md with frontmatter, or .json)")
	user := fs.String("user", "user-1", "User ID recorded on the generated page")
	pageID := fs.String("page-id", "", "Page identifier (derived from the headline when empty)")
	out := fs.String("out", "", "Write the generated HTML to this file (defaults to <page-id>.html)")
	backend := fs.String("backend", bridgepage.BackendMemory, "Hosting backend: memory, sqlite, or postgres")
	dsn := fs.String("dsn", "", "Database connection string for sqlite/postgres backends")
	baseURL := fs.String("base-url", "", "Public origin used when building page URLs")
	stageDelay := fs.Duration("stage-delay", 0, "Pause between pipeline stages")
	demoBanner := fs.Bool("demo-banner", false, "Render the demo banner at the top of the page")
	logLevel := fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFormat := fs.String("log-format", "console", "Log format: console, json, pretty")
	quiet := fs.Bool("quiet", false, "Suppress stage progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("input is required")
	}

	page, err := loadContent(*input)
	if err != nil {
		return err
	}

	cfg := bridgepage.DefaultConfig()
	cfg.Hosting.Backend = *backend
	cfg.Hosting.DSN = *dsn
	if *baseURL != "" {
		cfg.Hosting.BaseURL = *baseURL
	}
	cfg.Publisher.StageDelay = *stageDelay
	cfg.Renderer.DemoBanner = *demoBanner
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := bridgepage.New(cfg)
	if err != nil {
		return err
	}
	defer module.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc := module.Publisher()

	id := strings.TrimSpace(*pageID)
	if id == "" {
		id = content.NewPageID(page.Headline)
	}

	if !*quiet {
		watchCtx, stopWatch := context.WithCancel(ctx)
		defer stopWatch()
		go func() {
			for status := range svc.Subscribe(watchCtx, id) {
				if status.Error != "" {
					fmt.Fprintf(os.Stderr, "[%s] %s\n", status.Stage, status.Error)
					continue
				}
				fmt.Fprintf(os.Stderr, "[%s]\n", status.Stage)
			}
		}()
	}

	result, err := svc.Generate(ctx, publisher.GenerateRequest{
		Content: page,
		PageID:  id,
		UserID:  *user,
	})
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = result.PageID + ".html"
	}
	if err := os.WriteFile(target, []byte(result.HTML), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	fmt.Printf("page %s published at %s (%s)\n", result.PageID, result.PageURL, target)
	return nil
}

func loadContent(path string) (content.PageContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.PageContent{}, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return markdown.LoadPage(data)
	case ".json":
		return content.FromJSON(data)
	default:
		return content.PageContent{}, fmt.Errorf("unsupported page definition format %q", filepath.Ext(path))
	}
}
