package site

import (
	_ "embed"
	"fmt"
	"html/template"

	"github.com/BurntSushi/toml"
)

//go:embed content.toml
var contentTOML []byte

// Content is the editable copy shipped with the binary.
type Content struct {
	Navigation Navigation     `toml:"navigation"`
	Home       HomeContent    `toml:"home"`
	About      PageContent    `toml:"about"`
	Contact    ContactContent `toml:"contact"`
	Footer     Footer         `toml:"footer"`
}

// Navigation holds the labels of the primary navigation and the skip link.
type Navigation struct {
	Home    string `toml:"home"`
	About   string `toml:"about"`
	Contact string `toml:"contact"`
	Skip    string `toml:"skip"`
}

// HomeContent is the home page heading and Markdown introduction.
type HomeContent struct {
	Heading string `toml:"heading"`
	Intro   string `toml:"intro"`
}

// PageContent is a static page with a Markdown body.
type PageContent struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Body        string `toml:"body"`
}

// ContactContent is the Contact page plus the published email address.
type ContactContent struct {
	PageContent
	Email string `toml:"email"`
}

// Footer holds the text shown at the bottom of every page.
type Footer struct {
	Disclaimer string `toml:"disclaimer"`
}

// renderedContent holds the Markdown fields converted to safe HTML.
type renderedContent struct {
	HomeIntro   template.HTML
	AboutBody   template.HTML
	ContactBody template.HTML
}

// LoadContent parses the embedded content file.
func LoadContent() (Content, error) {
	return parseContent(contentTOML)
}

func parseContent(data []byte) (Content, error) {
	var content Content
	if err := toml.Unmarshal(data, &content); err != nil {
		return Content{}, fmt.Errorf("failed to parse site content: %w", err)
	}
	if content.About.Title == "" || content.Contact.Title == "" {
		return Content{}, fmt.Errorf("site content must define about and contact titles")
	}
	return content, nil
}

func (c Content) render() (renderedContent, error) {
	var out renderedContent
	var err error
	if out.HomeIntro, err = RenderMarkdown(c.Home.Intro); err != nil {
		return out, err
	}
	if out.AboutBody, err = RenderMarkdown(c.About.Body); err != nil {
		return out, err
	}
	if out.ContactBody, err = RenderMarkdown(c.Contact.Body); err != nil {
		return out, err
	}
	return out, nil
}
