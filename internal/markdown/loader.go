package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-bridgepage/content"
)

// pageEnvelope is the YAML frontmatter shape of an authored page file. The
// markdown body below the frontmatter supplies the body paragraphs.
type pageEnvelope struct {
	Headline      string `yaml:"headline"`
	Subheadline   string `yaml:"subheadline"`
	AffiliateLink string `yaml:"affiliate_link"`

	CTAButtons []string `yaml:"cta_buttons"`

	Colors struct {
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
	} `yaml:"colors"`

	Fonts struct {
		Heading string `yaml:"heading"`
		Body    string `yaml:"body"`
	} `yaml:"fonts"`

	HeroVideo struct {
		Enabled bool   `yaml:"enabled"`
		Embed   string `yaml:"embed"`
	} `yaml:"hero_video"`

	VideoEmbed string `yaml:"video_embed"`

	Bonuses []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Type        string `yaml:"type"`
		Enabled     *bool  `yaml:"enabled"`
	} `yaml:"bonuses"`
}

// LoadPage parses an authored markdown page into PageContent. Frontmatter
// carries the structured fields; each top-level paragraph of the body
// becomes one body paragraph of the page.
func LoadPage(source []byte) (content.PageContent, error) {
	var env pageEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &env)
	if err != nil {
		return content.PageContent{}, fmt.Errorf("markdown: parse frontmatter: %w", err)
	}

	page := content.PageContent{
		Headline:       env.Headline,
		Subheadline:    env.Subheadline,
		AffiliateLink:  env.AffiliateLink,
		BodyParagraphs: extractParagraphs(body),
		CTAButtons:     append([]string(nil), env.CTAButtons...),
		PrimaryColor:   env.Colors.Primary,
		SecondaryColor: env.Colors.Secondary,
		HeadingFont:    env.Fonts.Heading,
		BodyFont:       env.Fonts.Body,
		HeroVideo: content.VideoEmbed{
			Enabled: env.HeroVideo.Enabled,
			Embed:   content.EmbedFragment(env.HeroVideo.Embed),
		},
		VideoEmbed: content.EmbedFragment(env.VideoEmbed),
	}

	for _, bonus := range env.Bonuses {
		enabled := true
		if bonus.Enabled != nil {
			enabled = *bonus.Enabled
		}
		page.Bonuses = append(page.Bonuses, content.Bonus{
			Title:       bonus.Title,
			Description: bonus.Description,
			Type:        bonus.Type,
			Enabled:     enabled,
		})
	}

	return page, nil
}

// extractParagraphs walks the document AST and returns the text of each
// top-level paragraph. Headings, lists, and nested blocks are ignored so
// authors can annotate files without the notes leaking into the page.
func extractParagraphs(body []byte) []string {
	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := engine.Parser().Parse(text.NewReader(body))

	var paragraphs []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		paragraph, ok := node.(*ast.Paragraph)
		if !ok {
			continue
		}
		value := strings.TrimSpace(string(paragraph.Text(body)))
		if value == "" {
			continue
		}
		paragraphs = append(paragraphs, value)
	}
	return paragraphs
}
