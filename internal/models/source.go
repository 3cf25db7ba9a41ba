package models

// DefaultSourcePriority is assigned to sources that do not declare a priority.
const DefaultSourcePriority = -1

// Source is a backend a System can be queried through, for example the
// Jenkins REST API or a Zuul tenant.
type Source struct {
	// Name is the identifier of the source inside its system
	Name string

	// Driver identifies the backend implementation used to talk to the source
	Driver string

	// Priority orders sources when more than one can answer a query.
	// Higher values are preferred.
	Priority int

	enabled bool
}

func NewSource(name string, driver string) *Source {
	if driver == "" {
		driver = name
	}
	return &Source{
		Name:     name,
		Driver:   driver,
		Priority: DefaultSourcePriority,
		enabled:  true,
	}
}

func (s *Source) Enable() {
	s.enabled = true
}

func (s *Source) Disable() {
	s.enabled = false
}

func (s *Source) IsEnabled() bool {
	return s.enabled
}

type Sources []*Source

func (s Sources) Names() []string {
	names := make([]string, 0, len(s))
	for _, source := range s {
		names = append(names, source.Name)
	}
	return names
}
