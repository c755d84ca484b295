package view

// SectionContent is the literal copy for one content block.
type SectionContent struct {
	Heading string
	Body    string
}

// Content is everything the landing page says. The zero-config path bakes
// DefaultContent; a site config file can swap it wholesale.
type Content struct {
	Brand      string
	Tagline    string
	Sections   []SectionContent
	FooterNote string
}

// DefaultContent returns the stock copy for the Lumen landing page.
func DefaultContent() Content {
	return Content{
		Brand:   "Lumen",
		Tagline: "Notes that stay out of your way",
		Sections: []SectionContent{
			{
				Heading: "About",
				Body: "Lumen is a small notebook for people who write first and " +
					"organise never. Open it, type, close it. Your notes are " +
					"plain files on your own machine.",
			},
			{
				Heading: "Why Lumen",
				Body: "No accounts, no sync service, no sidebar full of features " +
					"you never asked for. One window, one page, instant search.",
			},
			{
				Heading: "Get started",
				Body: "Download the app, open it, and start typing. That is the " +
					"whole onboarding.",
			},
		},
		FooterNote: "Made by Three Lines Studio",
	}
}
