package bridgepage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-bridgepage/content"
)

func demoContent() content.PageContent {
	return content.PageContent{
		Headline:       "Transform Your Business",
		Subheadline:    "The proven system",
		BodyParagraphs: []string{"First paragraph."},
		CTAButtons:     []string{"Get Access"},
		AffiliateLink:  "https://example.com/offer",
		PrimaryColor:   "#3b82f6",
		SecondaryColor: "#1e40af",
		HeadingFont:    "Poppins",
		BodyFont:       "Inter",
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Logging.Enabled = false
	cfg.Publisher.StageDelay = 0
	return cfg
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults are valid", func(*Config) {}, nil},
		{"unknown backend", func(c *Config) { c.Hosting.Backend = "redis" }, ErrHostingBackendUnknown},
		{"sqlite requires dsn", func(c *Config) { c.Hosting.Backend = BackendSQLite; c.Hosting.DSN = "" }, ErrHostingDSNRequired},
		{"postgres requires dsn", func(c *Config) { c.Hosting.Backend = BackendPostgres; c.Hosting.DSN = "" }, ErrHostingDSNRequired},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrLoggingLevelInvalid},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrLoggingFormatInvalid},
		{"negative stage delay", func(c *Config) { c.Publisher.StageDelay = -time.Second }, ErrStageDelayNegative},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && err != tc.wantErr {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestModuleEndToEnd(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	svc := module.Publisher()
	ctx := context.Background()

	result, err := svc.Generate(ctx, GenerateRequest{
		Content: demoContent(),
		UserID:  "user-1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(result.PageURL, "https://pages.bridgebuilder.pro/pages/") {
		t.Fatalf("unexpected page url %q", result.PageURL)
	}

	stored, err := module.Hosting().Get(ctx, result.PageID)
	if err != nil {
		t.Fatalf("stored page not retrievable: %v", err)
	}
	if stored.HTML != result.HTML {
		t.Fatal("stored document does not match generated document")
	}

	events := module.Analytics().Events(result.PageID)
	if len(events) != 1 || events[0].Type != "page_generated" {
		t.Fatalf("expected one page_generated event, got %+v", events)
	}
}

func TestModuleWithSQLiteBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Hosting.Backend = BackendSQLite
	cfg.Hosting.DSN = "file:bridgepage_module_test?mode=memory&cache=shared&_fk=1"

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	result, err := module.Publisher().Generate(ctx, GenerateRequest{
		Content: demoContent(),
		UserID:  "user-1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	stored, err := module.Hosting().Get(ctx, result.PageID)
	if err != nil {
		t.Fatalf("stored page not retrievable: %v", err)
	}
	if stored.Content.Headline != demoContent().Headline {
		t.Fatal("content did not survive persistence")
	}
}

func TestModuleAuthDirectory(t *testing.T) {
	module, err := New(testConfig())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	defer module.Close()

	user, err := module.Auth().Login("admin@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("unexpected role %q", user.Role)
	}
}
