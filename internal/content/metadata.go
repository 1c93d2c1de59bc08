package content

// Metadata is the static descriptive surface of the page head.
// It has no effect on page behavior.
type Metadata struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Keywords     []string    `json:"keywords"`
	Authors      []string    `json:"authors"`
	Creator      string      `json:"creator"`
	OpenGraph    OpenGraph   `json:"open_graph"`
	Twitter      TwitterCard `json:"twitter"`
	Robots       Robots      `json:"robots"`
	Verification string      `json:"verification,omitempty"`
	Locale       string      `json:"locale"`
}

// OpenGraph holds the social preview tags.
type OpenGraph struct {
	Type        string `json:"type"`
	Locale      string `json:"locale"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SiteName    string `json:"site_name"`
}

// TwitterCard holds the twitter:* tags.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
}

// Robots holds crawler directives.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
	// MaxVideoPreview of -1 means no limit.
	MaxVideoPreview int    `json:"max_video_preview"`
	MaxImagePreview string `json:"max_image_preview"`
	// MaxSnippet of -1 means no limit.
	MaxSnippet int `json:"max_snippet"`
}

// ProductName is the brand shown in the navigation, hero and footer.
const ProductName = "NeuroScan Pro"

// DefaultMetadata returns the page head defaults.
func DefaultMetadata() Metadata {
	const shortDescription = "Revolutionary AI-powered neuroimaging platform for advanced brain analysis and medical diagnostics."
	const title = "NeuroScan Pro - Advanced Neuroimaging Analytics"

	return Metadata{
		Title:       title,
		Description: shortDescription + " Transform the future of neuroscience research.",
		Keywords: []string{
			"neuroimaging",
			"brain analysis",
			"medical AI",
			"neuroscience",
			"brain scans",
			"medical diagnostics",
		},
		Authors: []string{"NeuroScan Team"},
		Creator: ProductName,
		OpenGraph: OpenGraph{
			Type:        "website",
			Locale:      "en_US",
			URL:         "https://neuroscan-pro.vercel.app",
			Title:       title,
			Description: shortDescription,
			SiteName:    ProductName,
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: shortDescription,
			Creator:     "@neuroscanpro",
		},
		Robots: Robots{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
		Locale: "en",
	}
}
