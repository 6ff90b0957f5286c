// Package seo builds the sitemap urlset served at /sitemap.xml.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
)

// URL represents a single entry in the sitemap.
type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete urlset document.
type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Builder accumulates site URLs and renders the sitemap document.
type Builder struct {
	siteURL string
	urls    []URL
}

// NewBuilder creates a sitemap builder rooted at siteURL (no trailing
// slash).
func NewBuilder(siteURL string) *Builder {
	return &Builder{siteURL: siteURL}
}

// AddStatic adds a top-level page. Main pages carry weekly/1.0 per the
// site's SEO settings.
func (b *Builder) AddStatic(path, lastMod string) {
	b.urls = append(b.urls, URL{
		Loc:        b.siteURL + path,
		LastMod:    lastMod,
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "1.0",
	})
}

// AddDetail adds an entity detail page (solution or portfolio item) with
// monthly/0.8 metadata and the record's last modification time.
func (b *Builder) AddDetail(path string, updatedAt time.Time) {
	entry := URL{
		Loc:        b.siteURL + path,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.8",
	}
	if !updatedAt.IsZero() {
		entry.LastMod = updatedAt.Format("2006-01-02")
	}
	b.urls = append(b.urls, entry)
}

// URLs returns the accumulated entries.
func (b *Builder) URLs() []URL {
	return b.urls
}

// Build renders the urlset XML with the standard header.
func (b *Builder) Build() ([]byte, error) {
	doc := Sitemap{XMLNS: XMLNamespace, URLs: b.urls}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
