package extract

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// isModelSchema reports whether a component schema becomes a catalog model:
// objects with properties, allOf compositions and discriminated bases. Pure
// maps (additionalProperties only), scalars and arrays are inlined instead.
func isModelSchema(schema *openapi3.Schema) bool {
	if schema == nil {
		return false
	}
	if schema.Discriminator != nil || len(schema.AllOf) > 0 {
		return true
	}
	typ := firstSchemaType(schema.Type)
	if typ != "" && typ != openapi3.TypeObject {
		return false
	}
	if len(schema.Properties) > 0 {
		return true
	}
	return typ == openapi3.TypeObject && !hasAdditionalProperties(schema)
}

func hasAdditionalProperties(schema *openapi3.Schema) bool {
	ap := schema.AdditionalProperties
	return ap.Schema != nil || (ap.Has != nil && *ap.Has)
}

// typeOf renders the catalog type notation for a property.
func (w *walker) typeOf(ref *openapi3.SchemaRef) string {
	if name := refName(ref.Ref); name != "" && w.models[name] {
		return name
	}
	return w.inlineType(ref.Value)
}

func (w *walker) inlineType(schema *openapi3.Schema) string {
	if schema == nil {
		return "Object"
	}
	switch firstSchemaType(schema.Type) {
	case openapi3.TypeString:
		switch schema.Format {
		case "date-time":
			return "DateTime"
		case "date":
			return "Date"
		default:
			return "String"
		}
	case openapi3.TypeInteger:
		return "Integer"
	case openapi3.TypeNumber:
		return "Float"
	case openapi3.TypeBoolean:
		return "BOOLEAN"
	case openapi3.TypeArray:
		if schema.Items == nil {
			return "Array<Object>"
		}
		return "Array<" + w.elementType(schema.Items) + ">"
	case openapi3.TypeObject, "":
		if ap := schema.AdditionalProperties; ap.Schema != nil && len(schema.Properties) == 0 {
			return "Hash<String, " + w.elementType(ap.Schema) + ">"
		}
		if len(schema.AllOf) == 1 && schema.AllOf[0] != nil {
			return w.typeOf(schema.AllOf[0])
		}
		return "Object"
	default:
		return "Object"
	}
}

// elementType renders a container element. Nested containers are not
// representable and collapse to Object.
func (w *walker) elementType(ref *openapi3.SchemaRef) string {
	typ := w.typeOf(ref)
	if strings.HasPrefix(typ, "Array<") || strings.HasPrefix(typ, "Hash<") {
		return "Object"
	}
	return typ
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		for _, value := range values {
			if value != openapi3.TypeNull {
				return value
			}
		}
		return ""
	}
}
