package frame

// Frame is one decoded page: a language tag and label/value pairs.
//
// Labels keep the order in which they were first seen. Setting a label that
// is already present replaces its value but keeps its position.
//
// A Frame is not safe for concurrent mutation; it is built once and then
// read.
type Frame struct {
	Language string

	labels []string
	values map[string]string
}

// New returns an empty frame with the given language tag.
func New(language string) *Frame {
	return &Frame{
		Language: language,
		values:   make(map[string]string),
	}
}

// Set stores value under label, replacing any previous value.
func (f *Frame) Set(label, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, exists := f.values[label]; !exists {
		f.labels = append(f.labels, label)
	}
	f.values[label] = value
}

// Get returns the raw value for label.
func (f *Frame) Get(label string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[label]
	return v, ok
}

// Len returns the number of distinct labels.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.labels)
}

// Labels returns the labels in first-seen order.
func (f *Frame) Labels() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.labels...)
}

// Merge copies every pair from other into f. Values in other win.
// The language tag is taken from other when f has none.
func (f *Frame) Merge(other *Frame) {
	if other == nil {
		return
	}
	if f.Language == "" {
		f.Language = other.Language
	}
	for _, label := range other.labels {
		f.Set(label, other.values[label])
	}
}
