// Package extract maps OpenAPI component schemas onto catalog models using
// kin-openapi.
package extract

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/swag"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-modelmap/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
)

const (
	schemaRefPrefix = "#/components/schemas/"

	// idExtensionKey overrides the derived field identifier of a property.
	idExtensionKey = "x-modelmap-id"
	// skipExtensionKey excludes a component schema from the catalog.
	skipExtensionKey = "x-modelmap-skip"
)

// Extractor implements pkgopenapi.Extractor.
type Extractor struct {
	options pkgopenapi.ExtractOptions
	log     logrus.FieldLogger
}

var _ pkgopenapi.Extractor = (*Extractor)(nil)

// New constructs an Extractor with the given options.
func New(options pkgopenapi.ExtractOptions) *Extractor {
	log := options.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return &Extractor{options: options, log: log}
}

// Catalog loads doc with kin-openapi and converts every object schema under
// components.schemas into a catalog model. The result is validated as a
// registry before it is returned.
func (e *Extractor) Catalog(ctx context.Context, doc pkgopenapi.Document) (*catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi extractor: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: e.options.ResolveReferences,
	}
	api, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi extractor: load document: %w", err)
	}

	hasPaths := api.Paths != nil && api.Paths.Len() > 0
	if !hasPaths && !e.options.AllowPartialDocuments {
		return nil, errors.New("openapi extractor: document does not contain any paths")
	}
	if e.options.ResolveReferences && hasPaths {
		if err := api.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi extractor: validate: %w", err)
		}
	}
	if api.Components == nil || len(api.Components.Schemas) == 0 {
		return nil, errors.New("openapi extractor: document has no component schemas")
	}

	w := newWalker(api.Components.Schemas, e.log)
	out, err := w.catalog()
	if err != nil {
		return nil, err
	}
	if _, err := out.Registry(); err != nil {
		return nil, fmt.Errorf("openapi extractor: %w", err)
	}
	return out, nil
}

type discriminatorPin struct {
	field string
	value string
}

// walker holds the per-document state of one extraction.
type walker struct {
	schemas openapi3.Schemas
	log     logrus.FieldLogger

	models   map[string]bool
	families map[string]*catalog.Family
	pins     map[string]discriminatorPin
}

func newWalker(schemas openapi3.Schemas, log logrus.FieldLogger) *walker {
	return &walker{
		schemas:  schemas,
		log:      log,
		models:   make(map[string]bool),
		families: make(map[string]*catalog.Family),
		pins:     make(map[string]discriminatorPin),
	}
}

func (w *walker) names() []string {
	names := make([]string, 0, len(w.schemas))
	for name := range w.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (w *walker) catalog() (*catalog.Catalog, error) {
	names := w.names()
	for _, name := range names {
		ref := w.schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if skip, _ := ref.Value.Extensions[skipExtensionKey].(bool); skip {
			w.log.WithField("schema", name).Debug("openapi extractor: schema skipped by extension")
			continue
		}
		if isModelSchema(ref.Value) {
			w.models[name] = true
			continue
		}
		w.log.WithField("schema", name).Debug("openapi extractor: non-object schema inlined where referenced")
	}

	for _, name := range names {
		if !w.models[name] {
			continue
		}
		if err := w.collectFamily(name, w.schemas[name].Value); err != nil {
			return nil, err
		}
	}

	out := &catalog.Catalog{Version: catalog.SchemaVersion}
	for _, name := range names {
		if !w.models[name] {
			continue
		}
		m, err := w.model(name, w.schemas[name].Value)
		if err != nil {
			return nil, fmt.Errorf("openapi extractor: schema %s: %w", name, err)
		}
		out.Models = append(out.Models, m)
	}
	return out, nil
}

// collectFamily records the variants of a base declaring a discriminator.
// Without an explicit mapping every model extending the base through allOf
// becomes a variant keyed by its schema name.
func (w *walker) collectFamily(name string, schema *openapi3.Schema) error {
	disc := schema.Discriminator
	if disc == nil || disc.PropertyName == "" {
		return nil
	}
	field := fieldID(disc.PropertyName, nil)
	family := &catalog.Family{Field: field, Variants: make(map[string]string)}

	for value, target := range disc.Mapping {
		variant := refName(target)
		if !w.models[variant] {
			return fmt.Errorf("openapi extractor: schema %s: discriminator maps %q to unknown schema %q", name, value, target)
		}
		family.Variants[value] = variant
	}
	if len(family.Variants) == 0 {
		for _, candidate := range w.names() {
			if candidate != name && w.models[candidate] && w.extends(w.schemas[candidate].Value, name) {
				family.Variants[candidate] = candidate
			}
		}
	}
	if len(family.Variants) == 0 {
		w.log.WithField("schema", name).Debug("openapi extractor: discriminator without variants ignored")
		return nil
	}

	for value, variant := range family.Variants {
		if variant == name {
			continue
		}
		if prior, exists := w.pins[variant]; exists && prior.value != value {
			return fmt.Errorf("openapi extractor: schema %s is mapped to both %q and %q", variant, prior.value, value)
		}
		w.pins[variant] = discriminatorPin{field: field, value: value}
	}
	w.families[name] = family
	return nil
}

// extends reports whether schema lists base among its allOf references.
func (w *walker) extends(schema *openapi3.Schema, base string) bool {
	for _, part := range schema.AllOf {
		if part != nil && refName(part.Ref) == base {
			return true
		}
	}
	return false
}

func (w *walker) model(name string, schema *openapi3.Schema) (catalog.Model, error) {
	m := catalog.Model{
		Name:        name,
		Description: plainText(schema.Description),
		Family:      w.families[name],
	}
	if pin, ok := w.pins[name]; ok {
		m.Discriminator = &catalog.Discriminator{Field: pin.field, Value: pin.value}
	}

	properties := make(map[string]*openapi3.SchemaRef)
	w.mergeProperties(properties, schema, map[string]bool{name: true})

	selector := ""
	if m.Family != nil {
		selector = m.Family.Field
	}
	if m.Discriminator != nil {
		selector = m.Discriminator.Field
	}

	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m.Fields = make([]catalog.Field, 0, len(keys)+1)
	hasSelector := false
	for _, key := range keys {
		f, err := w.field(key, properties[key])
		if err != nil {
			return catalog.Model{}, err
		}
		if f.ID == selector {
			hasSelector = true
			f.Type = "String"
			f.Default = nil
		}
		m.Fields = append(m.Fields, f)
	}
	if selector != "" && !hasSelector {
		key := selectorKey(schema, selector)
		m.Fields = append(m.Fields, catalog.Field{ID: selector, Key: key, Type: "String"})
	}
	return m, nil
}

func selectorKey(schema *openapi3.Schema, id string) string {
	if schema.Discriminator != nil && schema.Discriminator.PropertyName != "" {
		return schema.Discriminator.PropertyName
	}
	return swag.ToJSONName(id)
}

// mergeProperties folds allOf members into target. Later declarations win so
// a subtype can narrow an inherited property.
func (w *walker) mergeProperties(target map[string]*openapi3.SchemaRef, schema *openapi3.Schema, seen map[string]bool) {
	for _, part := range schema.AllOf {
		if part == nil || part.Value == nil {
			continue
		}
		if parent := refName(part.Ref); parent != "" {
			if seen[parent] {
				continue
			}
			seen[parent] = true
		}
		w.mergeProperties(target, part.Value, seen)
	}
	for key, prop := range schema.Properties {
		if prop != nil {
			target[key] = prop
		}
	}
}

func (w *walker) field(key string, prop *openapi3.SchemaRef) (catalog.Field, error) {
	schema := prop.Value
	if schema == nil {
		return catalog.Field{}, fmt.Errorf("property %q has an unresolved reference %q", key, prop.Ref)
	}
	f := catalog.Field{
		ID:          fieldID(key, schema.Extensions),
		Key:         key,
		Type:        w.typeOf(prop),
		Description: plainText(schema.Description),
	}
	if enum := stringEnum(schema); len(enum) > 0 {
		f.Enum = enum
	}
	if schema.Default != nil {
		f.Default = schema.Default
	}
	if len(f.Enum) > 0 && !enumerable(f.Type) {
		f.Enum = nil
	}
	return f, nil
}

// stringEnum returns the string tokens of a string schema or of the items of
// a string array.
func stringEnum(schema *openapi3.Schema) []string {
	source := schema.Enum
	if schema.Type.Is(openapi3.TypeArray) && schema.Items != nil && schema.Items.Value != nil {
		source = schema.Items.Value.Enum
	}
	out := make([]string, 0, len(source))
	for _, value := range source {
		if s, ok := value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func enumerable(typ string) bool {
	return typ == "String" || typ == "Array<String>"
}

// fieldID derives the snake_case identifier for a wire key.
func fieldID(key string, extensions map[string]any) string {
	if override, ok := extensions[idExtensionKey].(string); ok && strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override)
	}
	return swag.ToFileName(key)
}

func refName(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, schemaRefPrefix) {
		return strings.TrimPrefix(ref, schemaRefPrefix)
	}
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
