package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// validateTree checks the structural rules of a tree and collects every
// violation, including those recorded while nodes were constructed.
func validateTree(r *Root) error {
	var errs []error

	if len(r.meta.children) == 0 {
		errs = append(errs, errRootNoChildren)
	}

	anonymous := 0

	for _, child := range r.meta.children {
		cm := child.Meta()

		switch {
		case cm.kind == KindMode && cm.none == "":
			anonymous++

			if cm.router == nil {
				errs = append(errs, errAnonymousModeRouter)
			}
		case cm.kind != KindMode && cm.router == nil:
			errs = append(errs, fmt.Errorf("%w: %s", errTopLevelRouter, cm.Label()))
		}
	}

	if anonymous > 1 {
		errs = append(errs, errDuplicateAnonymous)
	}

	errs = append(errs, checkSiblings(&r.meta)...)

	for _, child := range r.meta.children {
		errs = append(errs, checkNode(child, 0)...)
	}

	return errors.Join(errs...)
}

// checkCounts applies the arity rules of leaves.
func checkCounts(m *Meta) []error {
	var errs []error

	if m.minCount > m.maxCount {
		errs = append(errs, fmt.Errorf("%w: %s", errCountRange, m.Label()))
	}

	switch m.kind {
	case KindFlag, KindCountingFlag:
		if m.countSet {
			errs = append(errs, fmt.Errorf("%w: %s", errCountingFlagCount, m.Label()))
		}
	case KindMultiArg:
		if m.minCount < 1 {
			errs = append(errs, fmt.Errorf("%w: %s", errMultiArgCount, m.Label()))
		}
	}

	if m.separator != "" {
		if m.kind != KindArg {
			errs = append(errs, fmt.Errorf("%w: %s", errSeparatorPlacement, m.Label()))
		}

		if strings.TrimFunc(m.separator, unicode.IsSpace) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", errSeparatorWhitespace, m.Label()))
		}
	}

	return errs
}

// checkLeaf applies the naming and policy rules of a leaf.
func checkLeaf(m *Meta, depth int) []error {
	var errs []error

	named := m.long != "" || m.short != ""

	switch m.kind {
	case KindPositional:
		if named || m.Display() == "" {
			errs = append(errs, fmt.Errorf("%w: %s", errPositionalName, m.Label()))
		}
	case KindForwarding:
		if named || m.none == "" {
			errs = append(errs, fmt.Errorf("%w: %s", errForwardingName, m.Label()))
		}
	default:
		if !named {
			errs = append(errs, fmt.Errorf("%w: %s", errNeedsName, m.Label()))
		}

		if m.none != "" {
			errs = append(errs, fmt.Errorf("%w: %s", errNoneNameForbidden, m.Label()))
		}
	}

	if (m.kind == KindFlag || m.kind == KindCountingFlag) && m.parser != nil {
		errs = append(errs, fmt.Errorf("%w: %s", errNoParserAllowed, m.Label()))
	}

	if m.router != nil && depth > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", errLeafRouterPlacement, m.Label()))
	}

	return append(errs, checkCounts(m)...)
}

// checkMode applies the rules of a mode at depth (0 for root children).
func checkMode(m *Meta, depth int) []error {
	var errs []error

	if m.long != "" || m.short != "" {
		errs = append(errs, fmt.Errorf("%w: %s", errModeNames, m.Label()))
	}

	if len(m.children) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", errModeNoChildren, m.Label()))
	}

	childModes := 0

	for _, child := range m.children {
		if child.Meta().kind == KindMode {
			childModes++
		}
	}

	if m.router == nil && childModes != len(m.children) {
		errs = append(errs, fmt.Errorf("%w: %s", errModeChildModes, m.Label()))
	}

	if m.none == "" {
		if depth > 0 {
			errs = append(errs, errAnonymousModeNested)
		}

		if childModes > 0 {
			errs = append(errs, errAnonymousModeChild)
		}
	}

	return append(errs, checkSiblings(m)...)
}

func checkNode(n Node, depth int) []error {
	m := n.Meta()
	errs := append([]error(nil), m.errs...)

	switch m.kind {
	case KindMode:
		errs = append(errs, checkMode(m, depth)...)
	case KindAliasGroup, KindOneOf:
		if m.router != nil {
			errs = append(errs, fmt.Errorf("%w: %s", errNoRouterAllowed, m.kind))
		}
	default:
		errs = append(errs, checkLeaf(m, depth)...)
	}

	for _, child := range m.children {
		errs = append(errs, checkNode(child, depth+1)...)
	}

	return errs
}

// checkSiblings rejects a name declared twice among a container's children.
// Group children share their parent's namespace.
func checkSiblings(m *Meta) []error {
	var errs []error

	seen := map[string]bool{}

	for _, child := range flatChildren(m.children) {
		for _, name := range child.Meta().names() {
			key := name.String()
			if seen[key] {
				errs = append(errs, fmt.Errorf("%w: %s", errDuplicateName, key))
			}

			seen[key] = true
		}
	}

	return errs
}
