// Package ir provides the document model for TOON and JSON documents.
//
// # Overview
//
// All documents (whether parsed from text, created programmatically, or
// generated from schemas) are represented as ir.Node trees. The IR is a
// recursive tagged union: values are placed in fields depending on the
// node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - UndefinedType: sentinel for an absent value (missing key lookup)
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// UndefinedType is not a document value. It is returned from lookups on
// missing keys so that callers can distinguish "key absent" from "key
// present with null value". Constructed documents must never contain an
// undefined node, and encoders omit or reject them.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the string key for the value at
// Values[i], so there will always be the same number of fields as values.
// Field order is insertion order and is preserved by the encoders. Keys
// are unique under the active key comparer (case-sensitive by default,
// case-folding when an option selects it).
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if the literal had no fractional or exponent part
//   - Float64: otherwise
//
// Comparison and equality always treat numbers as real numbers; the
// Int64/Float64 split only records how the literal was written so that
// encoders can reproduce integer-looking output.
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships (Parent, ParentIndex,
// ParentField). Use Path() to get a JSONPath-style diagnostic path:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// The path is for error messages only; it does not participate in
// equality or hashing.
//
// # Thread Safety
//
// Node structures are not internally synchronized. Trees shared between
// goroutines must be treated as read-only after construction.
package ir
