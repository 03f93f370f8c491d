// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package view renders the catalog's HTML pages.

Templates are embedded into the binary and parsed once at startup. Every page
file defines a "content" block that the shared layout wraps.

Stored text:

Free text is entity-escaped before it is stored. Templates print such fields
with the stored func so html/template does not escape the entities a second
time. Everything else goes through html/template's contextual escaping as usual.
*/
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/taibuivan/locallibrary/internal/platform/apperr"
	"github.com/taibuivan/locallibrary/pkg/dates"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Page is the value every template receives.
type Page struct {
	// Title is shown in <title> and as the page heading.
	Title string
	// Data is the page-specific payload.
	Data any
	// Errors holds field errors when a form is re-rendered.
	Errors []apperr.FieldError
	// Staff is true when the visitor holds a staff session.
	Staff bool
	// StaffAuth is true when edits require a staff session.
	StaffAuth bool
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages     map[string]*template.Template
	debug     bool
	staffAuth bool
}

// Options configure a [Renderer].
type Options struct {
	// Debug exposes error causes on the error page.
	Debug bool
	// StaffAuth shows the login/logout links in the layout.
	StaffAuth bool
}

// New parses the layout together with every page template.
func New(options Options) (*Renderer, error) {
	entries, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view: list templates: %w", err)
	}

	renderer := &Renderer{
		pages:     make(map[string]*template.Template, len(entries)),
		debug:     options.Debug,
		staffAuth: options.StaffAuth,
	}

	for _, entry := range entries {
		if entry == layoutFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(entry), ".html")
		page, err := template.New("layout").Funcs(funcs).ParseFS(files, layoutFile, entry)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		renderer.pages[name] = page
	}

	return renderer, nil
}

// Render executes the named page into writer. Nothing is written on failure.
func (renderer *Renderer) Render(writer io.Writer, name string, page Page) error {
	tmpl, ok := renderer.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}

	page.StaffAuth = renderer.staffAuth

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("view: render %s: %w", name, err)
	}

	_, err := buf.WriteTo(writer)
	return err
}

// Debug reports whether error causes may be shown to visitors.
func (renderer *Renderer) Debug() bool {
	return renderer.debug
}

// # Template Funcs

var funcs = template.FuncMap{
	"stored":     stored,
	"isSelected": isSelected,
	"dateInput":  dates.Input,
	"fieldError": fieldError,
}

// stored marks entity-escaped text taken from the database as safe HTML.
func stored(text string) template.HTML {
	return template.HTML(text) //nolint:gosec // text was escaped before it was stored
}

// isSelected reports whether id is among the chosen ids.
func isSelected(id string, chosen []string) bool {
	return slices.Contains(chosen, id)
}

// fieldError returns the first message recorded for field.
func fieldError(errs []apperr.FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

