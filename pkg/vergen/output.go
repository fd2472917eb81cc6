package vergen

// Key identifies a single instruction. The set of keys is closed; each key
// has exactly one producer in the generator.
type Key int

// Instruction keys.
const (
	KeyBuildDate Key = iota
	KeyBuildTime
	KeyBuildTimestamp
	KeyBuildSemver
	KeyGoVersion
	KeyGoOS
	KeyGoArch
)

// Name returns the wire name of the key as it appears in emitted directives.
func (k Key) Name() string {
	switch k {
	case KeyBuildDate:
		return "VERGEN_BUILD_DATE"
	case KeyBuildTime:
		return "VERGEN_BUILD_TIME"
	case KeyBuildTimestamp:
		return "VERGEN_BUILD_TIMESTAMP"
	case KeyBuildSemver:
		return "VERGEN_BUILD_SEMVER"
	case KeyGoVersion:
		return "VERGEN_GO_VERSION"
	case KeyGoOS:
		return "VERGEN_GO_OS"
	case KeyGoArch:
		return "VERGEN_GO_ARCH"
	default:
		return "VERGEN_UNKNOWN"
	}
}

// String returns the wire name.
func (k Key) String() string { return k.Name() }

// Output is the insertion-ordered set of instruction entries produced by one
// generation run. Each key is written at most once; it has a single writer
// (the generator) and is read only after generation completes.
type Output struct {
	order  []Key
	values map[Key]string
}

// NewOutput returns an empty output set.
func NewOutput() *Output {
	return &Output{values: make(map[Key]string)}
}

// add inserts an entry. A key that is already present is left untouched so
// entries are write-once per run.
func (o *Output) add(key Key, value string) {
	if _, ok := o.values[key]; ok {
		return
	}
	o.order = append(o.order, key)
	o.values[key] = value
}

// Get returns the value for key and whether the key was emitted.
func (o *Output) Get(key Key) (string, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the emitted keys in insertion order.
func (o *Output) Keys() []Key {
	keys := make([]Key, len(o.order))
	copy(keys, o.order)
	return keys
}

// Len returns the number of emitted entries.
func (o *Output) Len() int { return len(o.order) }
