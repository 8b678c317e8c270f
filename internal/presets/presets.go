// Package presets is a named-configuration registry adapted from the
// teacher's simulation registry, retargeted from ebiten-drawable core.Sim
// factories to ready-to-use pkg/ca engine configurations.
package presets

// Preset bundles a human-readable description with whatever configuration
// a registered factory wants to hand back; callers type-assert Config to
// the shape their caller (e.g. cmd/ca) expects.
type Preset struct {
	Name        string
	Description string
	Config      any
}

// Factory constructs a Preset on demand.
type Factory func() Preset

var presets = map[string]Factory{}

// Register adds a preset factory under the given name. A zero name or nil
// factory is ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Lookup returns the factory registered under name, if any.
func Lookup(name string) (Factory, bool) {
	f, ok := presets[name]
	return f, ok
}

// Names returns every registered preset name.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
