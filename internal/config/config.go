// Package config loads the optional site file that swaps out the baked-in
// landing page copy.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/3-lines-studio/heimdall/internal/view"
)

// Site is the top-level TOML structure.
type Site struct {
	Brand      string    `toml:"brand"`
	Tagline    string    `toml:"tagline"`
	FooterNote string    `toml:"footer_note"`
	Addr       string    `toml:"addr"`
	Section    []Section `toml:"section"`
}

// Section is one [[section]] content block.
type Section struct {
	Heading string `toml:"heading"`
	Body    string `toml:"body"`
}

// Default returns the zero-config site: baked-in copy, local address.
func Default() Site {
	content := view.DefaultContent()

	sections := make([]Section, len(content.Sections))
	for i, s := range content.Sections {
		sections[i] = Section{Heading: s.Heading, Body: s.Body}
	}

	return Site{
		Brand:      content.Brand,
		Tagline:    content.Tagline,
		FooterNote: content.FooterNote,
		Addr:       ":8080",
		Section:    sections,
	}
}

// Load reads a site file. A missing file is not an error: the defaults
// apply unchanged.
func Load(path string) (Site, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read site config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML bytes.
func Parse(data []byte) (Site, error) {
	site := Default()
	if err := toml.Unmarshal(data, &site); err != nil {
		return Default(), fmt.Errorf("parse site config: %w", err)
	}

	site = normalize(site)

	if site.Brand == "" {
		return Default(), fmt.Errorf("site config: brand is required")
	}
	for i, s := range site.Section {
		if s.Heading == "" {
			return Default(), fmt.Errorf("site config: section[%d]: heading is required", i)
		}
	}

	return site, nil
}

func normalize(s Site) Site {
	s.Brand = strings.TrimSpace(s.Brand)
	s.Tagline = strings.TrimSpace(s.Tagline)
	s.FooterNote = strings.TrimSpace(s.FooterNote)
	if strings.TrimSpace(s.Addr) == "" {
		s.Addr = ":8080"
	}
	for i := range s.Section {
		s.Section[i].Heading = strings.TrimSpace(s.Section[i].Heading)
		s.Section[i].Body = strings.TrimSpace(s.Section[i].Body)
	}
	return s
}

// Content converts the site into the view layer's content form.
func (s Site) Content() view.Content {
	sections := make([]view.SectionContent, len(s.Section))
	for i, sec := range s.Section {
		sections[i] = view.SectionContent{Heading: sec.Heading, Body: sec.Body}
	}
	return view.Content{
		Brand:      s.Brand,
		Tagline:    s.Tagline,
		Sections:   sections,
		FooterNote: s.FooterNote,
	}
}
