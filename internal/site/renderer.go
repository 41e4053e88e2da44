// Package site renders the HTML pages of the calculators site.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"github.com/iwvelando/finance-calculators/pkg/constants"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// Static returns the embedded stylesheet and other assets, rooted so that
// "site.css" is at the top level.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	return sub
}

var pageNames = []string{"home", "calculator", "page", "notfound"}

// Renderer renders full pages. It is safe for concurrent use.
type Renderer struct {
	site      seo.Site
	registry  *calculator.Registry
	content   Content
	rendered  renderedContent
	longs     map[string]template.HTML
	templates map[string]*template.Template
	now       func() time.Time
}

type layoutData struct {
	Site       seo.Site
	Meta       seo.PageMeta
	JSONLD     []template.JS
	Nav        []navGroup
	Content    Content
	ActivePath string
	Year       int
	Feeds      feedLinks
	Page       any
}

type feedLinks struct {
	RSS  string
	Atom string
}

type homeView struct {
	Intro  template.HTML
	Groups []homeGroup
}

type homeGroup struct {
	Category    string
	Calculators []calculator.Definition
}

type calculatorView struct {
	Definition calculator.Definition
	Long       template.HTML
	Action     string
	Fields     []FieldView
	Outputs    []OutputView
	Submitted  bool
	Errors     []string
}

type pageView struct {
	Title string
	Body  template.HTML
	Email string
}

type notFoundView struct {
	Path string
}

// NewRenderer parses the templates and pre-renders Markdown for every
// registered calculator.
func NewRenderer(site seo.Site, registry *calculator.Registry) (*Renderer, error) {
	content, err := LoadContent()
	if err != nil {
		return nil, err
	}
	rendered, err := content.render()
	if err != nil {
		return nil, err
	}

	longs := make(map[string]template.HTML)
	for _, def := range registry.List() {
		if def.LongDescription == "" {
			continue
		}
		html, err := RenderMarkdown(def.LongDescription)
		if err != nil {
			return nil, fmt.Errorf("calculator %s: %w", def.Identifier, err)
		}
		longs[def.Identifier] = html
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").ParseFS(templateFiles, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{
		site:      site,
		registry:  registry,
		content:   content,
		rendered:  rendered,
		longs:     longs,
		templates: templates,
		now:       time.Now,
	}, nil
}

// Content returns the site copy.
func (r *Renderer) Content() Content {
	return r.content
}

func (r *Renderer) execute(name string, meta seo.PageMeta, activePath string, page any) ([]byte, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %s", name)
	}

	ld := make([]template.JS, 0, len(meta.JSONLD))
	for _, doc := range meta.JSONLD {
		// Encoded with json.Marshal, which escapes markup characters.
		ld = append(ld, template.JS(doc))
	}

	data := layoutData{
		Site:       r.site,
		Meta:       meta,
		JSONLD:     ld,
		Nav:        buildNavigation(r.registry.List(), activePath),
		Content:    r.content,
		ActivePath: activePath,
		Year:       r.now().Year(),
		Feeds: feedLinks{
			RSS:  r.site.URL(constants.RSSFile),
			Atom: r.site.URL(constants.AtomFile),
		},
		Page: page,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Home renders the calculator index grouped by category in registration
// order.
func (r *Renderer) Home() ([]byte, error) {
	defs := r.registry.List()
	meta, err := seo.HomeMeta(r.site, defs)
	if err != nil {
		return nil, err
	}

	view := homeView{Intro: r.rendered.HomeIntro}
	index := make(map[string]int)
	for _, def := range defs {
		category := def.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(view.Groups)
			index[category] = i
			view.Groups = append(view.Groups, homeGroup{Category: category})
		}
		view.Groups[i].Calculators = append(view.Groups[i].Calculators, def)
	}

	return r.execute("home", meta, seo.HomePath, view)
}

// Calculator renders a calculator page with its form and, after a
// submission, either the results or the field errors.
func (r *Renderer) Calculator(def calculator.Definition, state CalculatorState) ([]byte, error) {
	meta, err := seo.CalculatorMeta(r.site, def)
	if err != nil {
		return nil, err
	}

	path := seo.CalculatorPath(def.Identifier)
	view := calculatorView{
		Definition: def,
		Long:       r.longs[def.Identifier],
		Action:     path,
		Fields:     buildFields(def, state),
		Submitted:  state.Submitted,
	}
	if state.Submitted {
		if state.Err != nil {
			view.Errors = buildErrors(def, state.Err)
		} else {
			view.Outputs = buildOutputs(def, state.Result)
		}
	}

	return r.execute("calculator", meta, path, view)
}

// About renders the About page.
func (r *Renderer) About() ([]byte, error) {
	meta, err := seo.AboutMeta(r.site, r.content.About.Title, r.content.About.Description)
	if err != nil {
		return nil, err
	}
	return r.execute("page", meta, seo.AboutPath, pageView{
		Title: r.content.About.Title,
		Body:  r.rendered.AboutBody,
	})
}

// Contact renders the Contact page.
func (r *Renderer) Contact() ([]byte, error) {
	meta := seo.ContactMeta(r.site, r.content.Contact.Title, r.content.Contact.Description)
	return r.execute("page", meta, seo.ContactPath, pageView{
		Title: r.content.Contact.Title,
		Body:  r.rendered.ContactBody,
		Email: r.content.Contact.Email,
	})
}

// NotFound renders the not-found page for path.
func (r *Renderer) NotFound(path string) ([]byte, error) {
	return r.execute("notfound", seo.NotFoundMeta(r.site, path), path, notFoundView{Path: path})
}
