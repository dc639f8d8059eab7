package glshader

import (
	"fmt"
	"math"
)

// AttrBind binds a vertex attribute name to a fixed attribute array index.
// A binding with an empty Name terminates a binding list.
type AttrBind struct {
	Name  string
	Index uint32
}

// Bind returns the binding of attribute name to index.
func Bind(name string, index uint32) AttrBind {
	return AttrBind{Name: name, Index: index}
}

// BindPairs builds a binding list from alternating attribute names and
// indices, optionally terminated by nil:
//
//	binds := glshader.BindPairs("vertex_pos", 0, "tex_coord", 1)
//
// The result holds one binding per pair followed by an empty terminating
// binding. A name without an index, a non-string name or a negative or
// non-integer index panics.
func BindPairs(args ...any) []AttrBind {
	n := 0
	for i := 0; i < len(args) && args[i] != nil; i += 2 {
		if i+1 >= len(args) || args[i+1] == nil {
			contractf("attribute %v has no index", args[i])
		}
		n++
	}

	binds := make([]AttrBind, n+1)
	for i := range n {
		name, ok := args[2*i].(string)
		if !ok || name == "" {
			contractf("attribute name %v (%T) is not a non-empty string", args[2*i], args[2*i])
		}
		binds[i] = AttrBind{Name: name, Index: attrIndex(name, args[2*i+1])}
	}
	return binds
}

// attrIndex converts an attribute index argument of any integer kind to a
// GL attribute index.
func attrIndex(name string, v any) uint32 {
	var (
		idx uint64
		neg bool
	)
	switch x := v.(type) {
	case int:
		idx, neg = uint64(x), x < 0
	case int8:
		idx, neg = uint64(x), x < 0
	case int16:
		idx, neg = uint64(x), x < 0
	case int32:
		idx, neg = uint64(x), x < 0
	case int64:
		idx, neg = uint64(x), x < 0
	case uint:
		idx = uint64(x)
	case uint8:
		idx = uint64(x)
	case uint16:
		idx = uint64(x)
	case uint32:
		return x
	case uint64:
		idx = x
	default:
		contractf("attribute %q index %v (%T) is not an integer", name, v, v)
	}
	if neg || idx > math.MaxUint32 {
		contractf("attribute %q index %v out of range", name, v)
	}
	return uint32(idx)
}

// normalizeBinds copies binds up to the first terminating entry into a new
// slice that ends with exactly one terminating entry.
func normalizeBinds(binds []AttrBind) []AttrBind {
	n := 0
	for n < len(binds) && binds[n].Name != "" {
		n++
	}
	out := make([]AttrBind, n+1)
	copy(out, binds[:n])
	return out
}

// String implements fmt.Stringer.
func (b AttrBind) String() string {
	if b.Name == "" {
		return "<end>"
	}
	return fmt.Sprintf("%s=%d", b.Name, b.Index)
}
