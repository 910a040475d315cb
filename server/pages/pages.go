// Package pages serves the static HTML pages of the site, including the
// planner form on the index page.
package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	apierrors "github.com/teilomillet/travelplanner/errors"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page describes one navigable page.
type Page struct {
	Name  string
	Title string
	Path  string
}

// All lists the pages in navigation order.
var All = []Page{
	{Name: "index", Title: "Planner", Path: "/index/"},
	{Name: "destinations", Title: "Destinations", Path: "/destinations/"},
	{Name: "guides", Title: "Guides", Path: "/guides/"},
	{Name: "testimonials", Title: "Testimonials", Path: "/testimonials/"},
	{Name: "help", Title: "Help", Path: "/help/"},
}

type pageData struct {
	Title  string
	Active string
	Nav    []Page
	Year   int

	Destinations []Destination
	Guides       []Guide
	Testimonials []Testimonial
	FAQ          []Question
}

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

// New parses every page against the shared layout.
func New(logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Renderer{
		templates: make(map[string]*template.Template, len(All)),
		logger:    logger,
	}
	for _, p := range All {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+p.Name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", p.Name, err)
		}
		r.templates[p.Name] = tmpl
	}
	return r, nil
}

// Handler returns the handler for the named page. It panics on an unknown
// name since page names are fixed at compile time.
func (r *Renderer) Handler(name string) http.HandlerFunc {
	tmpl, ok := r.templates[name]
	if !ok {
		panic(fmt.Sprintf("pages: unknown page %q", name))
	}
	page := lookup(name)

	return func(w http.ResponseWriter, req *http.Request) {
		data := pageData{
			Title:        page.Title,
			Active:       page.Name,
			Nav:          All,
			Year:         time.Now().Year(),
			Destinations: destinations,
			Guides:       guides,
			Testimonials: testimonials,
			FAQ:          faq,
		}

		// Render to a buffer so a template error doesn't leave a half-written page.
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
			r.logger.Error("Failed to render page",
				zap.String("page", name),
				zap.Error(err),
			)
			apierrors.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}

func lookup(name string) Page {
	for _, p := range All {
		if p.Name == name {
			return p
		}
	}
	return Page{Name: name, Title: name}
}
