package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/go-openapi/swag"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Templates returns the built-in template files.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// engine renders pongo2 templates from an fs.FS and caches parsed templates.
type engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

func newEngine(files fs.FS) (*engine, error) {
	if files == nil {
		return nil, errors.New("codegen: template filesystem is nil")
	}
	if err := registerFilters(); err != nil {
		return nil, err
	}
	return &engine{
		set:       pongo2.NewSet("modelmap", pongo2.NewFSLoader(files)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

func (e *engine) render(name string, ctx pongo2.Context) ([]byte, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return nil, fmt.Errorf("codegen: execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (e *engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[name]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("codegen: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

var (
	filtersOnce sync.Once
	filtersErr  error
)

// registerFilters installs the identifier helpers once per process; pongo2
// filters are global.
func registerFilters() error {
	filtersOnce.Do(func() {
		filters := map[string]func(string) string{
			"goname": swag.ToGoName,
			"govar":  swag.ToVarName,
			"quote":  strconv.Quote,
		}
		for name, fn := range filters {
			if pongo2.FilterExists(name) {
				continue
			}
			fn := fn
			err := pongo2.RegisterFilter(name, func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
				return pongo2.AsSafeValue(fn(in.String())), nil
			})
			if err != nil {
				filtersErr = fmt.Errorf("codegen: register filter %q: %w", name, err)
				return
			}
		}
		if !pongo2.FilterExists("comment") {
			filtersErr = pongo2.RegisterFilter("comment", commentFilter)
		}
	})
	return filtersErr
}

// commentFilter renders text as a block of // lines.
func commentFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	text := strings.TrimSpace(in.String())
	if text == "" {
		return pongo2.AsSafeValue(""), nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+strings.TrimSpace(line), " ")
	}
	return pongo2.AsSafeValue(strings.Join(lines, "\n")), nil
}
