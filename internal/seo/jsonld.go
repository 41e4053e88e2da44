package seo

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/finance-calculators/internal/calculator"
)

const schemaContext = "https://schema.org"

type webSite struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	InLanguage  string `json:"inLanguage,omitempty"`
}

type itemList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	NumberOfItems   int        `json:"numberOfItems"`
	ItemListElement []listItem `json:"itemListElement"`
}

type listItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Item     string `json:"item,omitempty"`
}

type webApplication struct {
	Context             string        `json:"@context"`
	Type                string        `json:"@type"`
	Name                string        `json:"name"`
	URL                 string        `json:"url"`
	Description         string        `json:"description"`
	ApplicationCategory string        `json:"applicationCategory"`
	OperatingSystem     string        `json:"operatingSystem"`
	BrowserRequirements string        `json:"browserRequirements,omitempty"`
	Keywords            string        `json:"keywords,omitempty"`
	InLanguage          string        `json:"inLanguage,omitempty"`
	Offers              offer         `json:"offers"`
	Publisher           *organization `json:"publisher,omitempty"`
}

type offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type breadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []listItem `json:"itemListElement"`
}

type organization struct {
	Context     string `json:"@context,omitempty"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}

// json.Marshal escapes <, > and & so the output is safe inside a script element.
func marshalAll(docs ...any) ([]string, error) {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode structured data: %w", err)
		}
		out = append(out, string(data))
	}
	return out, nil
}

func homeStructuredData(site Site, defs []calculator.Definition) ([]string, error) {
	list := itemList{
		Context:         schemaContext,
		Type:            "ItemList",
		Name:            site.Title,
		NumberOfItems:   len(defs),
		ItemListElement: make([]listItem, 0, len(defs)),
	}
	for i, def := range defs {
		list.ItemListElement = append(list.ItemListElement, listItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     def.Name,
			URL:      site.URL(CalculatorPath(def.Identifier)),
		})
	}

	return marshalAll(
		webSite{
			Context:     schemaContext,
			Type:        "WebSite",
			Name:        site.Title,
			URL:         site.URL(HomePath),
			Description: site.Description,
			InLanguage:  site.Language,
		},
		list,
	)
}

func calculatorStructuredData(site Site, def calculator.Definition) ([]string, error) {
	pageURL := site.URL(CalculatorPath(def.Identifier))

	app := webApplication{
		Context:             schemaContext,
		Type:                "WebApplication",
		Name:                def.Name,
		URL:                 pageURL,
		Description:         def.Description,
		ApplicationCategory: "FinanceApplication",
		OperatingSystem:     "Any",
		BrowserRequirements: "Requires HTML5",
		Keywords:            joinKeywords(def.Keywords),
		InLanguage:          site.Language,
		Offers:              offer{Type: "Offer", Price: "0", PriceCurrency: "USD"},
		Publisher:           &organization{Type: "Organization", Name: site.Publisher(), URL: site.URL(HomePath)},
	}

	crumbs := breadcrumbList{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []listItem{
			{Type: "ListItem", Position: 1, Name: "Home", Item: site.URL(HomePath)},
			{Type: "ListItem", Position: 2, Name: def.Name, Item: pageURL},
		},
	}

	return marshalAll(app, crumbs)
}

func organizationStructuredData(site Site) ([]string, error) {
	return marshalAll(organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        site.Publisher(),
		URL:         site.URL(HomePath),
		Logo:        site.ImageURL(),
		Description: site.Description,
	})
}
