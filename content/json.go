package content

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-bridgepage/internal/schema"
)

// jsonEnvelope is the wire shape of a JSON page document.
type jsonEnvelope struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	HeroVideo   struct {
		Enabled bool   `json:"enabled"`
		Embed   string `json:"embed"`
	} `json:"hero_video"`
	BodyParagraphs []string `json:"body_paragraphs"`
	VideoEmbed     string   `json:"video_embed"`
	CTAButtons     []string `json:"cta_buttons"`
	AffiliateLink  string   `json:"affiliate_link"`
	Bonuses        []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Enabled     *bool  `json:"enabled"`
	} `json:"bonuses"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	HeadingFont    string `json:"heading_font"`
	BodyFont       string `json:"body_font"`
}

// FromJSON decodes a JSON page document. The payload is checked against the
// page schema first so shape errors surface with instance locations instead
// of zero-valued fields.
func FromJSON(data []byte) (PageContent, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return PageContent{}, fmt.Errorf("content: decode page document: %w", err)
	}
	if err := schema.ValidatePage(payload); err != nil {
		return PageContent{}, err
	}

	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return PageContent{}, fmt.Errorf("content: decode page document: %w", err)
	}

	page := PageContent{
		Headline:    env.Headline,
		Subheadline: env.Subheadline,
		HeroVideo: VideoEmbed{
			Enabled: env.HeroVideo.Enabled,
			Embed:   EmbedFragment(env.HeroVideo.Embed),
		},
		BodyParagraphs: append([]string(nil), env.BodyParagraphs...),
		VideoEmbed:     EmbedFragment(env.VideoEmbed),
		CTAButtons:     append([]string(nil), env.CTAButtons...),
		AffiliateLink:  env.AffiliateLink,
		PrimaryColor:   env.PrimaryColor,
		SecondaryColor: env.SecondaryColor,
		HeadingFont:    env.HeadingFont,
		BodyFont:       env.BodyFont,
	}
	for _, bonus := range env.Bonuses {
		enabled := true
		if bonus.Enabled != nil {
			enabled = *bonus.Enabled
		}
		page.Bonuses = append(page.Bonuses, Bonus{
			Title:       bonus.Title,
			Description: bonus.Description,
			Type:        bonus.Type,
			Enabled:     enabled,
		})
	}
	return page, nil
}
