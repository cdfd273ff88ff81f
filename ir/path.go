package ir

import (
	"strconv"
	"strings"
)

// Path returns the JSONPath-style diagnostic path of this node's
// position in its tree, e.g. "$.foo.bar[0]". The root is "$". The path
// is derived from parent links on demand; it is for error messages only
// and plays no part in equality or hashing.
func (node *Node) Path() string {
	if node.Parent == nil {
		return "$"
	}
	switch node.Parent.Type {
	case ObjectType:
		f := node.ParentField
		prefix := node.Parent.Path()
		if pathQuoteField(f) {
			return prefix + "[" + strconv.Quote(f) + "]"
		}
		return prefix + "." + f
	case ArrayType:
		return node.Parent.Path() + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		return node.Parent.Path()
	}
}

// ChildPath extends a path string for a named member, quoting names that
// would not survive dotted syntax.
func ChildPath(path, field string) string {
	if pathQuoteField(field) {
		return path + "[" + strconv.Quote(field) + "]"
	}
	return path + "." + field
}

// IndexPath extends a path string for an array element.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func pathQuoteField(f string) bool {
	if f == "" {
		return true
	}
	return strings.ContainsAny(f, ". []{}\"'\t\n")
}
