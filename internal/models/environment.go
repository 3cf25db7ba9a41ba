package models

// Environment groups the Systems that make up one CI deployment.
type Environment struct {
	Name    string
	Systems Systems
}

func NewEnvironment(name string) *Environment {
	return &Environment{
		Name: name,
	}
}

func (e *Environment) AddSystem(system *System) {
	e.Systems = append(e.Systems, system)
}

func (e *Environment) SystemNames() []string {
	return e.Systems.Names()
}

// WithSystems returns a new Environment with the same name holding only the
// given systems. The receiver is left untouched.
func (e *Environment) WithSystems(systems Systems) *Environment {
	return &Environment{
		Name:    e.Name,
		Systems: systems,
	}
}

type Environments []*Environment

func (e Environments) Names() []string {
	names := make([]string, 0, len(e))
	for _, env := range e {
		names = append(names, env.Name)
	}
	return names
}

// Systems flattens the systems of every environment, in order.
func (e Environments) Systems() Systems {
	var systems Systems
	for _, env := range e {
		systems = append(systems, env.Systems...)
	}
	return systems
}
