package generate

// Flags are the generation switches of one invocation.
type Flags struct {
	Force     bool
	Model     bool
	Policy    bool
	Migration bool
	Seed      bool
	Factory   bool
	Resource  bool
	Crud      bool
	Route     bool
	File      string // route file override
	Page      bool
	Modal     bool
	Form      bool
	All       bool
}

// Expand returns f with the switches implied by All turned on: model,
// factory, seed, migration, policy, resource, crud and route. The receiver
// is not modified and Expand(Expand(f)) == Expand(f).
func Expand(f Flags) Flags {
	if !f.All {
		return f
	}
	f.Model = true
	f.Factory = true
	f.Seed = true
	f.Migration = true
	f.Policy = true
	f.Resource = true
	f.Crud = true
	f.Route = true
	return f
}

// Any reports whether any switch is set.
func (f Flags) Any() bool {
	return f != Flags{}
}
