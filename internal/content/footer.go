package content

// Link is a labelled anchor.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// LinkGroup is one column of the footer.
type LinkGroup struct {
	// Category is the lowercase group key, title-cased by the renderer.
	Category string `json:"category"`
	Links    []Link `json:"links"`
}

// SocialLink is an icon link in the footer brand column.
type SocialLink struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Href string `json:"href"`
}

// Certification is a compliance badge in the footer.
type Certification struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Contact holds the footer contact details.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

var footerGroups = []LinkGroup{
	{Category: "product", Links: []Link{
		{Name: "Features", Href: "#features"},
		{Name: "Demo", Href: "#demo"},
		{Name: "Pricing", Href: "#pricing"},
		{Name: "API Documentation", Href: "#docs"},
		{Name: "Integrations", Href: "#integrations"},
	}},
	{Category: "company", Links: []Link{
		{Name: "About Us", Href: "#about"},
		{Name: "Careers", Href: "#careers"},
		{Name: "News", Href: "#news"},
		{Name: "Contact", Href: "#contact"},
		{Name: "Partners", Href: "#partners"},
	}},
	{Category: "resources", Links: []Link{
		{Name: "Help Center", Href: "#help"},
		{Name: "Community", Href: "#community"},
		{Name: "Research Papers", Href: "#research"},
		{Name: "Case Studies", Href: "#cases"},
		{Name: "Webinars", Href: "#webinars"},
	}},
	{Category: "legal", Links: []Link{
		{Name: "Privacy Policy", Href: "#privacy"},
		{Name: "Terms of Service", Href: "#terms"},
		{Name: "HIPAA Compliance", Href: "#hipaa"},
		{Name: "Security", Href: "#security"},
		{Name: "Compliance", Href: "#compliance"},
	}},
}

var socialLinks = []SocialLink{
	{Name: "Twitter", Icon: "twitter", Href: "#twitter"},
	{Name: "LinkedIn", Icon: "linkedin", Href: "#linkedin"},
	{Name: "GitHub", Icon: "github", Href: "#github"},
}

var certifications = []Certification{
	{Name: "HIPAA Compliant", Icon: "shield"},
	{Name: "FDA Approved", Icon: "award"},
	{Name: "SOC 2 Type II", Icon: "globe"},
}

// FooterGroups returns the footer link columns in display order.
func FooterGroups() []LinkGroup {
	groups := make([]LinkGroup, len(footerGroups))
	for i, g := range footerGroups {
		groups[i] = LinkGroup{Category: g.Category, Links: clone(g.Links)}
	}
	return groups
}

// SocialLinks returns the footer social icons.
func SocialLinks() []SocialLink { return clone(socialLinks) }

// Certifications returns the compliance badges.
func Certifications() []Certification { return clone(certifications) }

// ContactDetails returns the footer contact block.
func ContactDetails() Contact {
	return Contact{
		Email:    "contact@neuroscanpro.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA, USA",
	}
}

// Copyright is the bottom bar notice.
const Copyright = "© 2024 NeuroScan Pro. All rights reserved."
