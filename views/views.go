// Package views renders the server-side HTML pages of the site.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

const (
	SiteTitle       = "AI Engineer Portfolio - Data Science & Machine Learning Expert"
	SiteDescription = "Professional portfolio of an AI Engineer and Data Scientist specializing in machine learning, AI integration, and intelligent solutions."

	layoutTemplate = "layout.html"
)

// Page names accepted by Renderer.Render.
const (
	PageHome           = "home.html"
	PageProjects       = "projects.html"
	PageNotes          = "notes.html"
	PageNote           = "note.html"
	PageVideos         = "videos.html"
	PageContact        = "contact.html"
	PageAdminLogin     = "admin_login.html"
	PageAdminDashboard = "admin_dashboard.html"
	PageNotFound       = "not_found.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML inside notes is escaped since WithUnsafe is not set.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps()),
)

// Page is what every template receives.
type Page struct {
	Title       string
	Description string
	Path        string
	Data        any
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout once and every page template against a clone of it.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New(layoutTemplate).Funcs(funcMap).ParseFS(templateFS, "templates/"+layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := path.Base(file)
		if name == layoutTemplate {
			continue
		}
		tpl, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := tpl.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the named page wrapped in the layout. Nothing is written to w on error.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if page.Title == "" {
		page.Title = SiteTitle
	}
	if page.Description == "" {
		page.Description = SiteDescription
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutTemplate, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderMarkdown converts a note body to HTML.
func RenderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var funcMap = template.FuncMap{
	"formatViews": FormatViews,
	"isActive": func(current, link string) bool {
		if link == "/" {
			return current == "/"
		}
		return current == link || strings.HasPrefix(current, link+"/")
	},
}
