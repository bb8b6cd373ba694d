package content

// EmbedFragment marks a trusted raw-HTML snippet (e.g. a video iframe embed
// code). The renderer inserts fragments verbatim inside a centering wrapper
// without escaping; hosts are responsible for supplying sanitized markup.
// Every other text field on PageContent is escaped before interpolation.
type EmbedFragment string

// VideoEmbed couples an embed fragment with an enabled toggle so users can
// stage a hero video without deleting the embed code.
type VideoEmbed struct {
	Enabled bool
	Embed   EmbedFragment
}

// Bonus is an optional supplementary offer item attached to a page. Only
// enabled bonuses are rendered, in their original relative order.
type Bonus struct {
	Title       string
	Description string
	Type        string
	Enabled     bool
}

// PageContent is the full set of user-editable fields describing a generated
// bridge page. It is an in-memory record; loaders (markdown, JSON) produce it
// and the validator/renderer/publisher consume it.
type PageContent struct {
	Headline       string
	Subheadline    string
	HeroVideo      VideoEmbed
	BodyParagraphs []string
	VideoEmbed     EmbedFragment
	CTAButtons     []string
	AffiliateLink  string
	Bonuses        []Bonus
	PrimaryColor   string
	SecondaryColor string
	HeadingFont    string
	BodyFont       string
}

// EnabledBonuses returns the bonuses flagged for rendering, preserving order.
func (c PageContent) EnabledBonuses() []Bonus {
	out := make([]Bonus, 0, len(c.Bonuses))
	for _, bonus := range c.Bonuses {
		if bonus.Enabled {
			out = append(out, bonus)
		}
	}
	return out
}

// BonusTypes lists the preset bonus type labels offered by the builder UI.
// The validator does not constrain Bonus.Type to this list.
func BonusTypes() []string {
	return []string{
		"PDF Guide",
		"Video Training",
		"Excel Templates",
		"Swipe Files",
		"Checklist",
		"Audio Series",
		"Code Templates",
		"Interactive Workbook",
	}
}

// HeadingFonts lists the preset heading font families offered by the builder UI.
func HeadingFonts() []string {
	return []string{"Poppins", "Montserrat", "Playfair Display", "Roboto"}
}

// BodyFonts lists the preset body font families offered by the builder UI.
func BodyFonts() []string {
	return []string{"Inter", "Open Sans", "Lato", "Source Sans Pro"}
}
