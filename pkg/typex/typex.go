package typex

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

type cacheKey struct {
	t      reflect.Type
	query  string
	target any
}

// cache is shared by every query in the process. Values are immutable once
// stored, so concurrent readers never need a lock.
var cache sync.Map

func cached[V any](key cacheKey, compute func() V) V {
	if v, ok := cache.Load(key); ok {
		return v.(V)
	}
	v, _ := cache.LoadOrStore(key, compute())
	return v.(V)
}

// Implements reports whether t implements iface. It is false when iface is
// not an interface type or either argument is nil.
func Implements(t, iface reflect.Type) bool {
	if t == nil || iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	return cached(cacheKey{t: t, query: "implements", target: iface}, func() bool {
		return t.Implements(iface)
	})
}

// ImplementsType reports whether t implements the interface I.
func ImplementsType[I any](t reflect.Type) bool {
	return Implements(t, reflect.TypeFor[I]())
}

type instance struct {
	args []string
	ok   bool
}

// InstanceOf reports whether t, a pointer to it, or one of its embedded
// fields is an instantiation of the generic type named generic, and returns
// the instantiation's type arguments. generic is either package-qualified
// ("typex.Box") or fully qualified by import path
// ("github.com/odvcencio/prodx/pkg/typex.Box").
func InstanceOf(t reflect.Type, generic string) ([]string, bool) {
	if t == nil || generic == "" || strings.ContainsAny(generic, "[]") {
		return nil, false
	}
	res := cached(cacheKey{t: t, query: "instance", target: generic}, func() instance {
		args, ok := findInstance(t, generic, map[reflect.Type]bool{})
		return instance{args: args, ok: ok}
	})
	return slices.Clone(res.args), res.ok
}

func findInstance(t reflect.Type, generic string, seen map[reflect.Type]bool) ([]string, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if seen[t] {
		return nil, false
	}
	seen[t] = true

	if args, ok := matchInstance(t, generic); ok {
		return args, true
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if args, ok := findInstance(f.Type, generic, seen); ok {
			return args, true
		}
	}
	return nil, false
}

func matchInstance(t reflect.Type, generic string) ([]string, bool) {
	name := t.Name()
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return nil, false
	}
	base := name[:open]

	full := t.PkgPath() + "." + base
	short := base
	if s := t.String(); strings.Contains(s, ".") {
		short = s[:strings.IndexByte(s, '[')]
	}
	if generic != full && generic != short {
		return nil, false
	}
	return splitTypeArgs(name[open+1 : len(name)-1]), true
}

// splitTypeArgs splits a type argument list on top-level commas.
func splitTypeArgs(list string) []string {
	var args []string
	depth, start := 0, 0
	for i, r := range list {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(list[start:]))
}

// HasTag reports whether struct type t (or the struct t points to) has a
// field named field carrying a tag with the given key.
func HasTag(t reflect.Type, field, key string) bool {
	t = structType(t)
	if t == nil {
		return false
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return false
	}
	_, ok = f.Tag.Lookup(key)
	return ok
}

// TaggedFields returns the visible fields of struct type t, promoted fields
// included, that carry key in their tag with a value other than "-".
func TaggedFields(t reflect.Type, key string) []reflect.StructField {
	t = structType(t)
	if t == nil {
		return nil
	}
	fields := cached(cacheKey{t: t, query: "tagged", target: key}, func() []reflect.StructField {
		var out []reflect.StructField
		for _, f := range reflect.VisibleFields(t) {
			if v, ok := f.Tag.Lookup(key); ok && v != "-" {
				out = append(out, f)
			}
		}
		return out
	})
	return slices.Clone(fields)
}

func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
