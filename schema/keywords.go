package schema

// Recognized schema keywords.
const (
	KwType             = "type"
	KwMinLength        = "minLength"
	KwMaxLength        = "maxLength"
	KwPattern          = "pattern"
	KwFormat           = "format"
	KwEnum             = "enum"
	KwDescription      = "description"
	KwMinimum          = "minimum"
	KwMaximum          = "maximum"
	KwExclusiveMinimum = "exclusiveMinimum"
	KwExclusiveMaximum = "exclusiveMaximum"
	KwMultipleOf       = "multipleOf"
	KwProperties       = "properties"
	KwRequired         = "required"
	KwItems            = "items"
	KwUniqueItems      = "uniqueItems"
	KwMinItems         = "minItems"
	KwMaxItems         = "maxItems"
)

// Recognized type names. TypeUndefined is a pseudo-type: it names the
// absent-value sentinel and can never be combined into a schema.
const (
	TypeNull      = "null"
	TypeBoolean   = "boolean"
	TypeNumber    = "number"
	TypeInteger   = "integer"
	TypeString    = "string"
	TypeObject    = "object"
	TypeArray     = "array"
	TypeUndefined = "undefined"
)

func knownTypeName(v string) bool {
	switch v {
	case TypeNull, TypeBoolean, TypeNumber, TypeInteger, TypeString, TypeObject, TypeArray:
		return true
	default:
		return false
	}
}
