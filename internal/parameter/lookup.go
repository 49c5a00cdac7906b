package parameter

// LabelForName returns the protocol label for a canonical name.
func LabelForName(name string) (string, bool) {
	d, ok := LookupByName(name)
	return d.Label, ok
}

// NameForLabel returns the canonical name for a protocol label.
func NameForLabel(label string) (string, bool) {
	d, ok := LookupByLabel(label)
	return d.Name, ok
}

// IsKnownName reports whether name is registered.
func IsKnownName(name string) bool { return IsName(name) }

// IsKnownLabel reports whether label is registered.
func IsKnownLabel(label string) bool { return IsLabel(label) }

// AllNames returns every canonical name in declaration order.
func AllNames() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Name
	}
	return out
}

// AllLabels returns every protocol label in declaration order.
func AllLabels() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Label
	}
	return out
}
