// Package renderer turns a validated PageContent record into a complete,
// self-contained HTML document: inline CSS, inline tracking shim, escaped
// user text. Rendering is deterministic; identical input and page ID produce
// byte-identical output.
package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-bridgepage/content"
	"github.com/goliatone/go-bridgepage/internal/logging"
	"github.com/goliatone/go-bridgepage/pkg/interfaces"
)

// DefaultBaseURL is the hosting origin embedded in og:url when no base URL is
// configured.
const DefaultBaseURL = "https://pages.bridgebuilder.pro"

// Renderer renders bridge-page documents. Construct with New; the zero value
// is not usable.
type Renderer struct {
	baseURL           string
	analyticsEndpoint string
	demoBanner        bool
	logger            interfaces.Logger
	tmpl              *template.Template
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBaseURL sets the hosting origin used for og:url. Trailing slashes are
// trimmed.
func WithBaseURL(baseURL string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
			r.baseURL = trimmed
		}
	}
}

// WithAnalyticsEndpoint points the embedded tracking shim at an HTTP
// collector. When empty, events are only buffered to localStorage.
func WithAnalyticsEndpoint(endpoint string) Option {
	return func(r *Renderer) {
		r.analyticsEndpoint = strings.TrimSpace(endpoint)
	}
}

// WithDemoBanner toggles the fixed demo banner at the top of the document.
func WithDemoBanner(enabled bool) Option {
	return func(r *Renderer) {
		r.demoBanner = enabled
	}
}

// WithLogger injects the logger used for render diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New constructs a Renderer with the page document template compiled.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		baseURL: DefaultBaseURL,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("bridgepage").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("renderer: parse page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// pageData is the template payload. User text fields stay plain strings so
// html/template applies contextual escaping; embed fragments are promoted to
// template.HTML because they cross the documented trust boundary.
type pageData struct {
	PageID            string
	Headline          string
	Subheadline       string
	Title             string
	Description       string
	HeroVideo         template.HTML
	Paragraphs        []string
	AdditionalVideo   template.HTML
	Bonuses           []content.Bonus
	CTAButtons        []string
	AffiliateLink     string
	PrimaryColor      string
	SecondaryColor    string
	HeadingFont       string
	BodyFont          string
	FontsHref         template.URL
	PageURL           string
	AnalyticsEndpoint string
	DemoBanner        bool
}

// Render produces the standalone HTML document for the supplied content and
// page identifier. It performs no validation; run content.Validate first.
func (r *Renderer) Render(c content.PageContent, pageID string) (string, error) {
	data := pageData{
		PageID:            pageID,
		Headline:          c.Headline,
		Subheadline:       c.Subheadline,
		Title:             defaultString(c.Headline, "Bridge Page"),
		Description:       defaultString(c.Subheadline, "High-converting bridge page"),
		Paragraphs:        nonEmpty(c.BodyParagraphs),
		Bonuses:           c.EnabledBonuses(),
		CTAButtons:        nonEmpty(c.CTAButtons),
		AffiliateLink:     c.AffiliateLink,
		PrimaryColor:      c.PrimaryColor,
		SecondaryColor:    c.SecondaryColor,
		HeadingFont:       c.HeadingFont,
		BodyFont:          c.BodyFont,
		FontsHref:         fontsHref(c.HeadingFont, c.BodyFont),
		PageURL:           r.baseURL + "/" + pageID,
		AnalyticsEndpoint: r.analyticsEndpoint,
		DemoBanner:        r.demoBanner,
	}

	if c.HeroVideo.Enabled && strings.TrimSpace(string(c.HeroVideo.Embed)) != "" {
		data.HeroVideo = template.HTML(c.HeroVideo.Embed)
	}
	if strings.TrimSpace(string(c.VideoEmbed)) != "" {
		data.AdditionalVideo = template.HTML(c.VideoEmbed)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("renderer: execute page template for %q: %w", pageID, err)
	}

	r.logger.Debug("renderer.page_rendered", "page_id", pageID, "bytes", buf.Len())
	return buf.String(), nil
}

// fontsHref builds the Google Fonts stylesheet URL for the two families. The
// URL is assembled here and marked safe because template URL escaping would
// mangle the family weight syntax.
func fontsHref(headingFont, bodyFont string) template.URL {
	heading := strings.ReplaceAll(headingFont, " ", "+")
	body := strings.ReplaceAll(bodyFont, " ", "+")
	return template.URL(fmt.Sprintf(
		"https://fonts.googleapis.com/css2?family=%s:wght@400;600;700&family=%s:wght@400;500;600&display=swap",
		heading, body,
	))
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
