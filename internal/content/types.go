// Package content holds the copy, imagery and icon choices shown on the landing page.
//
// Content is immutable once loaded. A Store hands out snapshots and swaps
// them wholesale when the content file changes.
package content

// DefaultBusinessName is shown in the hero when no name is configured.
const DefaultBusinessName = "מסעדה גמא"

// Card is a small visual unit pairing an icon, a title and a description,
// optionally over a background image.
type Card struct {
	Icon        string `yaml:"icon" validate:"required,icon"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	ImageURL    string `yaml:"image_url,omitempty" validate:"omitempty,url"`
}

// Image is a referenced picture and its alternative text.
type Image struct {
	URL string `yaml:"url" validate:"required,url"`
	Alt string `yaml:"alt" validate:"required"`
}

// Hero is the full-viewport banner.
type Hero struct {
	BusinessName string `yaml:"business_name"`
	Headline     string `yaml:"headline" validate:"required"`
	Tagline      string `yaml:"tagline" validate:"required"`
	CTALabel     string `yaml:"cta_label" validate:"required"`
	Blurb        string `yaml:"blurb"`
	Image        Image  `yaml:"image"`
}

// Story is the narrative block of the about section.
type Story struct {
	Heading    string   `yaml:"heading" validate:"required"`
	Paragraphs []string `yaml:"paragraphs" validate:"min=1,dive,required"`
	Image      Image    `yaml:"image"`
}

// About is the "about us" section.
type About struct {
	Heading      string `yaml:"heading" validate:"required"`
	Intro        string `yaml:"intro" validate:"required"`
	Features     []Card `yaml:"features" validate:"min=1,dive"`
	TeamImage    Image  `yaml:"team_image"`
	TeamCaption  string `yaml:"team_caption" validate:"required"`
	Story        Story  `yaml:"story"`
	VisitHeading string `yaml:"visit_heading" validate:"required"`
	CTALabel     string `yaml:"cta_label" validate:"required"`
}

// Services is the services showcase.
type Services struct {
	Heading       string `yaml:"heading" validate:"required"`
	Intro         string `yaml:"intro" validate:"required"`
	BackgroundURL string `yaml:"background_url" validate:"omitempty,url"`
	Cards         []Card `yaml:"cards" validate:"min=1,dive"`
	CTALabel      string `yaml:"cta_label" validate:"required"`
}

// Page is everything rendered on the landing page.
type Page struct {
	Lang        string   `yaml:"lang" validate:"required,bcp47_language_tag"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	BaseURL     string   `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Hero        Hero     `yaml:"hero"`
	About       About    `yaml:"about"`
	Services    Services `yaml:"services"`
}
