package transform

import "fmt"

type transformConstructor func() Transform

// Map of recipe names to their constructors. Recipe files and callers
// address built-ins through these names.
var allTransformConstructors = map[string]transformConstructor{
	"deduplicate":          func() Transform { return NewDeduplicate() },
	"simplify":             func() Transform { return NewSimplify() },
	"remove-empty":         func() Transform { return NewRemoveEmpty() },
	"sort-by-dependencies": func() Transform { return NewSortByDependencies() },
	"normalize-ids":        func() Transform { return NewNormalizeIDs() },
}

// NewByName constructs a built-in transform by its registered name.
func NewByName(name string) (Transform, error) {
	cstr, ok := allTransformConstructors[name]
	if !ok {
		return nil, &Error{
			Kind: KindUnknownTransform,
			Msg:  fmt.Sprintf("unknown transform %q", name),
		}
	}
	return cstr(), nil
}

// Names returns the registered transform names. Order is unspecified.
func Names() []string {
	names := make([]string, 0, len(allTransformConstructors))
	for name := range allTransformConstructors {
		names = append(names, name)
	}
	return names
}
