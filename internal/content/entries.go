package content

// FeatureEntry is one card of the feature grid.
type FeatureEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Icon is an icon tag resolved by the renderer (e.g. "brain", "zap").
	Icon string `json:"icon"`
	// Stat is the short badge shown next to the title.
	Stat string `json:"stat"`
}

// StatEntry is one animated counter of the statistics section.
type StatEntry struct {
	Value       float64 `json:"value"`
	Prefix      string  `json:"prefix"`
	Suffix      string  `json:"suffix"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// SampleScan is one of the preset scans offered in the upload panel of the demo.
type SampleScan struct {
	Name     string `json:"name"`
	Modality string `json:"modality"`
	Size     string `json:"size"`
	Preview  string `json:"preview"`
}

// HeroHighlight is a pill displayed under the hero subtitle.
type HeroHighlight struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// NavLink is an in-page navigation anchor.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// QuickStat is a static figure shown below the demo screen.
type QuickStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	// Tone selects the palette used for the value ("medical", "success", "neural").
	Tone string `json:"tone"`
}

var features = []FeatureEntry{
	{
		Title:       "AI-Powered Analysis",
		Description: "Advanced machine learning algorithms analyze brain scans with unprecedented accuracy and speed.",
		Icon:        "brain",
		Stat:        "98.7% accuracy",
	},
	{
		Title:       "Real-time Processing",
		Description: "Get instant results with our optimized cloud infrastructure and parallel processing capabilities.",
		Icon:        "zap",
		Stat:        "< 30 seconds",
	},
	{
		Title:       "3D Visualization",
		Description: "Interactive 3D brain models with detailed anatomical structures and pathology highlighting.",
		Icon:        "scan",
		Stat:        "HD quality",
	},
	{
		Title:       "Collaborative Platform",
		Description: "Share findings securely with your medical team and access reports from anywhere.",
		Icon:        "users",
		Stat:        "HIPAA compliant",
	},
	{
		Title:       "Multi-modal Support",
		Description: "Support for MRI, CT, PET, and fMRI imaging with automated format detection.",
		Icon:        "layers",
		Stat:        "4+ formats",
	},
	{
		Title:       "Predictive Analytics",
		Description: "Early detection of neurological conditions using advanced predictive modeling.",
		Icon:        "trending-up",
		Stat:        "Early detection",
	},
}

var stats = []StatEntry{
	{
		Value:       2500000,
		Suffix:      "+",
		Label:       "Brain Scans Analyzed",
		Description: "Advanced AI analysis of neuroimaging data",
	},
	{
		Value:       98.7,
		Suffix:      "%",
		Label:       "Accuracy Rate",
		Description: "Precision in detecting neurological conditions",
	},
	{
		Value:       150,
		Suffix:      "+",
		Label:       "Medical Centers",
		Description: "Trusted by leading healthcare institutions",
	},
	{
		Value:       45,
		Label:       "Countries Served",
		Description: "Global reach in neuroimaging solutions",
	},
}

var sampleScans = []SampleScan{
	{Name: "Healthy Brain MRI", Modality: "T1-weighted", Size: "45.2 MB", Preview: "/api/placeholder/150/150"},
	{Name: "Alzheimer's Case", Modality: "Structural MRI", Size: "52.8 MB", Preview: "/api/placeholder/150/150"},
	{Name: "Stroke Analysis", Modality: "Diffusion MRI", Size: "38.1 MB", Preview: "/api/placeholder/150/150"},
}

var heroHighlights = []HeroHighlight{
	{Icon: "zap", Text: "< 30s Processing"},
	{Icon: "brain", Text: "AI-Powered"},
	{Icon: "shield", Text: "Secure & Private"},
}

var navLinks = []NavLink{
	{Label: "Features", Href: "#features"},
	{Label: "Demo", Href: "#demo"},
	{Label: "Pricing", Href: "#pricing"},
	{Label: "Contact", Href: "#contact"},
}

var quickStats = []QuickStat{
	{Value: "< 30s", Label: "Processing Time", Tone: "medical"},
	{Value: "98.7%", Label: "Accuracy", Tone: "success"},
	{Value: "24/7", Label: "Availability", Tone: "neural"},
}

var trustIndicators = []string{"HIPAA Compliant", "FDA Approved", "SOC 2 Certified"}

// Features returns the six feature cards.
func Features() []FeatureEntry { return clone(features) }

// Stats returns the four statistics counters.
func Stats() []StatEntry { return clone(stats) }

// SampleScans returns the three preset scans of the upload panel.
func SampleScans() []SampleScan { return clone(sampleScans) }

// HeroHighlights returns the pills shown in the hero.
func HeroHighlights() []HeroHighlight { return clone(heroHighlights) }

// NavLinks returns the navigation bar anchors.
func NavLinks() []NavLink { return clone(navLinks) }

// QuickStats returns the figures below the demo screen.
func QuickStats() []QuickStat { return clone(quickStats) }

// TrustIndicators returns the badges of the call-to-action banner.
func TrustIndicators() []string { return clone(trustIndicators) }

func clone[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
