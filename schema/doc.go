// Package schema validates ir.Node documents against schema documents
// expressed in the same model, and builds such schema documents.
//
// A schema is an object node using a subset of JSON Schema Draft-7
// keywords: type, minLength, maxLength, pattern, format, enum,
// description, minimum, maximum, exclusiveMinimum, exclusiveMaximum,
// multipleOf, properties, required, items, uniqueItems, minItems,
// maxItems.
//
// Validation walks schema and instance together and accumulates an
// ordered list of path-tagged violations; an empty list means the
// instance is valid. Problems with the schema itself (an unrecognized
// format, a keyword of the wrong kind, a non-object subschema) are
// configuration errors reported through the error return, never as
// violations.
//
// Schemas can be assembled three ways: parsed from text like any other
// document, built from the constructor primitives (String, Number,
// Object, ...), or derived from an external type describer
// (FromDescriber).
package schema
