// Package charset resolves filter specs into sets of displayable characters.
package charset

import (
	"fmt"
	"sort"
	"strings"
)

// Named character classes, combinable with "+" in a filter spec.
const (
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Digits  = "0123456789"
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// SpecAll selects every character observed in the tally rather than a
// predefined alphabet.
const SpecAll = "all"

// DefaultSpec applies when neither a flag nor the config file provides one.
const DefaultSpec = "symbols+digits"

var classes = map[string]string{
	"symbols": Symbols,
	"digits":  Digits,
	"letters": Letters,
}

// Set holds the characters eligible for display.
type Set map[rune]struct{}

// Contains reports whether r is in the set.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// UnknownClassError reports an unrecognized class name in a filter spec.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("invalid char set: %s", e.Name)
}

// IsAll reports whether the spec requests the dynamic all-observed filter.
// "all" is only recognized as a whole spec, never as part of a union.
func IsAll(spec string) bool {
	return strings.EqualFold(spec, SpecAll)
}

// Resolve parses a "+"-joined filter spec into the union of its named
// classes. Class names are case-insensitive. The "all" spec is handled by
// the caller since its membership depends on the observed tally.
func Resolve(spec string) (Set, error) {
	set := Set{}
	for _, name := range strings.Split(spec, "+") {
		members, ok := classes[strings.ToLower(name)]
		if !ok {
			return nil, &UnknownClassError{Name: name}
		}
		for _, r := range members {
			set[r] = struct{}{}
		}
	}
	return set, nil
}

// Class pairs a class name with its member characters.
type Class struct {
	Name    string
	Members string
}

// Classes returns the named classes in alphabetical order.
func Classes() []Class {
	out := make([]Class, 0, len(classes))
	for name, members := range classes {
		out = append(out, Class{Name: name, Members: members})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
