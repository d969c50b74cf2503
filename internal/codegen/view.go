package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-openapi/swag"

	"github.com/goliatone/go-modelmap/pkg/model"
)

// reservedMethods are defined on every wrapper and cannot be field getters.
var reservedMethods = map[string]bool{
	"ModelRecord": true,
	"ToMap":       true,
	"MarshalJSON": true,
	"Equal":       true,
	"Clone":       true,
}

type fileView struct {
	Package     string
	Source      string
	NeedsTime   bool
	Models      []modelView
	Families    []familyView
	Enums       []enumView
	Descriptors []descriptorView
}

type modelView struct {
	Name   string
	GoName string
	Doc    string
	Fields []fieldView
	Family string
	Marker string
	Base   bool
}

type familyView struct {
	Name     string
	GoName   string
	Marker   string
	Unknown  string
	Doc      string
	Variants []variantView
	Shared   []fieldView
}

type variantView struct {
	Model  string
	GoName string
}

type fieldView struct {
	ID       string
	GoName   string
	Setter   string
	Returns  string
	Body     string
	SetType  string
	Doc      string
	NoSetter bool
}

type enumView struct {
	Model  string
	Field  string
	Values []enumValueView
}

type enumValueView struct {
	Const string
	Value string
}

type descriptorView struct {
	Name          string
	Description   string
	Discriminator string
	Family        string
	Fields        []string
}

// reservedTypes are package-level identifiers of the generated file.
var reservedTypes = map[string]bool{
	"Registry":  true,
	"NewMapper": true,
}

type builder struct {
	reg      *model.Registry
	families map[string]bool
	used     map[string]string
}

// buildView lays out the template data for every model in reg.
func buildView(reg *model.Registry, pkg, source string) (fileView, error) {
	b := &builder{reg: reg, families: make(map[string]bool), used: make(map[string]string)}
	names := reg.Names()
	for _, name := range names {
		d, _ := reg.Lookup(name)
		if d.Family != nil {
			b.families[name] = true
		}
	}

	view := fileView{Package: pkg, Source: source}
	for _, name := range names {
		d, _ := reg.Lookup(name)
		goName := swag.ToGoName(name)
		if b.families[name] {
			goName = "Unknown" + goName
		}
		if err := b.claim(goName, name); err != nil {
			return fileView{}, err
		}

		mv := modelView{Name: name, GoName: goName, Doc: d.Description, Base: b.families[name]}
		for _, f := range d.Fields {
			fv := b.field(f)
			fv.NoSetter = d.Discriminator != nil && d.Discriminator.Field == f.ID
			if f.Type.Kind() == model.KindPrimitive && (f.Type.Primitive() == model.DateTime || f.Type.Primitive() == model.Date) {
				view.NeedsTime = true
			}
			mv.Fields = append(mv.Fields, fv)
			if f.Enum != nil {
				view.Enums = append(view.Enums, b.enum(name, f))
			}
		}
		view.Models = append(view.Models, mv)
		view.Descriptors = append(view.Descriptors, descriptorLiteral(d))
	}

	for i := range view.Models {
		mv := &view.Models[i]
		family := b.familyOf(mv.Name)
		if family == "" {
			continue
		}
		mv.Family = swag.ToGoName(family)
		mv.Marker = marker(family)
	}

	for _, name := range names {
		if !b.families[name] {
			continue
		}
		d, _ := reg.Lookup(name)
		goName := swag.ToGoName(name)
		if err := b.claim(goName, name); err != nil {
			return fileView{}, err
		}
		fv := familyView{
			Name:    name,
			GoName:  goName,
			Marker:  marker(name),
			Unknown: "Unknown" + goName,
			Doc:     d.Description,
		}
		for _, value := range d.Family.Values() {
			variant := d.Family.Variants[value]
			fv.Variants = append(fv.Variants, variantView{Model: variant, GoName: swag.ToGoName(variant)})
		}
		fv.Shared = b.sharedFields(d)
		view.Families = append(view.Families, fv)
	}
	return view, nil
}

func (b *builder) claim(goName, model string) error {
	if reservedTypes[goName] {
		return fmt.Errorf("codegen: model %q maps to reserved identifier %s", model, goName)
	}
	if prior, ok := b.used[goName]; ok {
		return fmt.Errorf("codegen: models %q and %q both map to Go type %s", prior, model, goName)
	}
	b.used[goName] = model
	return nil
}

// familyOf returns the base whose family lists name as a variant.
func (b *builder) familyOf(name string) string {
	if b.families[name] {
		return name
	}
	d, _ := b.reg.Lookup(name)
	if d.Discriminator == nil {
		return ""
	}
	for _, base := range sortedKeys(b.families) {
		bd, _ := b.reg.Lookup(base)
		if bd.Family.Variants[d.Discriminator.Value] == name {
			return base
		}
	}
	return ""
}

func marker(family string) string {
	return "is" + swag.ToGoName(family)
}

// sharedFields lists base fields that every variant declares with the same
// type; they become methods of the family interface.
func (b *builder) sharedFields(base *model.Descriptor) []fieldView {
	var out []fieldView
	for _, f := range base.Fields {
		shared := true
		for _, variant := range base.Family.Variants {
			vd, ok := b.reg.Lookup(variant)
			if !ok {
				shared = false
				break
			}
			vf, ok := vd.Field(f.ID)
			if !ok || !vf.Type.Equal(f.Type) {
				shared = false
				break
			}
		}
		if shared {
			out = append(out, b.field(f))
		}
	}
	return out
}

// wrapExpr returns the expression turning a *model.Record named rec into the
// Go value of a model reference.
func (b *builder) wrapExpr(name string) (string, string) {
	goName := swag.ToGoName(name)
	if b.families[name] {
		return goName, "Wrap" + goName + "(rec)"
	}
	return "*" + goName, "&" + goName + "{rec: rec}"
}

func (b *builder) field(f model.Field) fieldView {
	goName := swag.ToGoName(f.ID)
	if reservedMethods[goName] {
		goName += "Field"
	}
	fv := fieldView{
		ID:     f.ID,
		GoName: goName,
		Setter: "Set" + goName,
		Doc:    fmt.Sprintf("%s returns %s (wire key %q).", goName, f.ID, f.Key),
	}
	if f.Description != "" {
		fv.Doc += "\n" + f.Description
	}
	id := strconv.Quote(f.ID)

	switch f.Type.Kind() {
	case model.KindPrimitive:
		fv.Returns, fv.Body, fv.SetType = primitiveAccessor(f.Type.Primitive(), id)
	case model.KindModel:
		typ, wrap := b.wrapExpr(f.Type.Model())
		fv.Returns = typ
		fv.SetType = typ
		fv.Body = fmt.Sprintf("rec, ok := x.rec.GetNested(%s)\nif !ok {\nreturn nil\n}\nreturn %s", id, wrap)
	case model.KindSequence:
		elem, _ := f.Type.Elem()
		switch {
		case elem.Kind() == model.KindModel:
			typ, wrap := b.wrapExpr(elem.Model())
			fv.Returns = "[]" + typ
			fv.SetType = fv.Returns
			fv.Body = fmt.Sprintf("recs := x.rec.GetNestedList(%s)\nout := make([]%s, 0, len(recs))\nfor _, rec := range recs {\nout = append(out, %s)\n}\nreturn out", id, typ, wrap)
		case elem.Primitive() == model.String:
			fv.Returns, fv.SetType = "[]string", "[]string"
			fv.Body = fmt.Sprintf("return x.rec.GetStrings(%s)", id)
		default:
			fv.Returns, fv.SetType = "[]any", "[]any"
			fv.Body = fmt.Sprintf("v, _ := x.rec.Get(%s)\nitems, _ := v.([]any)\nreturn items", id)
		}
	case model.KindMapping:
		elem, _ := f.Type.Elem()
		switch {
		case elem.Kind() == model.KindModel:
			typ, wrap := b.wrapExpr(elem.Model())
			fv.Returns = "map[string]" + typ
			fv.SetType = fv.Returns
			fv.Body = fmt.Sprintf("entries := x.rec.GetMap(%s)\nout := make(map[string]%s, len(entries))\nfor k, v := range entries {\nif rec, ok := v.(*model.Record); ok && rec != nil {\nout[k] = %s\n}\n}\nreturn out", id, typ, wrap)
		case elem.Primitive() == model.String:
			fv.Returns, fv.SetType = "map[string]string", "map[string]string"
			fv.Body = fmt.Sprintf("return x.rec.GetStringMap(%s)", id)
		default:
			fv.Returns, fv.SetType = "map[string]any", "map[string]any"
			fv.Body = fmt.Sprintf("return x.rec.GetMap(%s)", id)
		}
	}
	return fv
}

func primitiveAccessor(p model.Primitive, id string) (returns, body, setType string) {
	switch p {
	case model.String:
		return "(string, bool)", "return x.rec.GetString(" + id + ")", "string"
	case model.Integer:
		return "(int64, bool)", "return x.rec.GetInt(" + id + ")", "int64"
	case model.Number:
		return "(float64, bool)", "return x.rec.GetFloat(" + id + ")", "float64"
	case model.Boolean:
		return "(bool, bool)", "return x.rec.GetBool(" + id + ")", "bool"
	case model.DateTime, model.Date:
		return "(time.Time, bool)", "return x.rec.GetTime(" + id + ")", "time.Time"
	default:
		return "(any, bool)", "return x.rec.Get(" + id + ")", "any"
	}
}

func (b *builder) enum(modelName string, f model.Field) enumView {
	prefix := swag.ToGoName(modelName) + swag.ToGoName(f.ID)
	ev := enumView{Model: modelName, Field: f.ID}
	for _, value := range f.Enum.Values {
		ev.Values = append(ev.Values, enumValueView{
			Const: prefix + swag.ToGoName(strings.ToLower(value)),
			Value: strconv.Quote(value),
		})
	}
	return ev
}

// descriptorLiteral renders d as Go source for the static descriptor table.
func descriptorLiteral(d *model.Descriptor) descriptorView {
	dv := descriptorView{Name: strconv.Quote(d.Name)}
	if d.Description != "" {
		dv.Description = strconv.Quote(d.Description)
	}
	if disc := d.Discriminator; disc != nil {
		dv.Discriminator = fmt.Sprintf("&model.Discriminator{Field: %q, Value: %q}", disc.Field, disc.Value)
	}
	if fam := d.Family; fam != nil {
		values := fam.Values()
		entries := make([]string, 0, len(values))
		for _, value := range values {
			entries = append(entries, fmt.Sprintf("%q: %q,", value, fam.Variants[value]))
		}
		dv.Family = fmt.Sprintf("&model.Family{\nField: %q,\nVariants: map[string]string{\n%s\n},\n}", fam.Field, strings.Join(entries, "\n"))
	}
	for _, f := range d.Fields {
		dv.Fields = append(dv.Fields, fieldLiteral(f))
	}
	return dv
}

func fieldLiteral(f model.Field) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "model.Field{ID: %q, Key: %q, Type: model.MustParseType(%q)", f.ID, f.Key, f.Type.String())
	if f.Description != "" {
		fmt.Fprintf(&sb, ", Description: %q", f.Description)
	}
	sb.WriteString("}")
	if f.HasDefault {
		if lit, ok := goLiteral(f.Default); ok {
			fmt.Fprintf(&sb, ".WithDefault(%s)", lit)
		}
	}
	if f.Enum != nil {
		values := make([]string, len(f.Enum.Values))
		for i, v := range f.Enum.Values {
			values[i] = strconv.Quote(v)
		}
		fmt.Fprintf(&sb, ".WithEnum(%s)", strings.Join(values, ", "))
	}
	return sb.String()
}

// goLiteral renders scalar defaults. Composite defaults are not emitted.
func goLiteral(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return strconv.Quote(value), true
	case bool:
		return strconv.FormatBool(value), true
	case int:
		return fmt.Sprintf("int64(%d)", value), true
	case int64:
		return fmt.Sprintf("int64(%d)", value), true
	case float64:
		return "float64(" + strconv.FormatFloat(value, 'g', -1, 64) + ")", true
	default:
		return "", false
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
