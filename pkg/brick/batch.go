package brick

// Batch is an ordered set of specs to generate plus the run settings
// collected alongside them. Manifests and scripts both produce a Batch;
// empty settings fall back to the CLI flags.
type Batch struct {
	Specs      []Spec
	ExportDir  string
	Format     string // "stl" or "3mf"
	System     string // "lego" or "duplo"
	Resolution int    // marching cubes cells, 0 = kernel default
}

// Add appends a spec to the batch.
func (b *Batch) Add(spec Spec) {
	b.Specs = append(b.Specs, spec)
}

// AddSeries expands a series sweep and appends the resulting bricks.
func (b *Batch) AddSeries(s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, r := range s.Expand() {
		b.Add(r)
	}
	return nil
}
