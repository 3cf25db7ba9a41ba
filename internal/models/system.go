package models

import "sort"

const (
	SystemTypeJenkins = "jenkins"
	SystemTypeZuul    = "zuul"
)

var SystemTypes = []string{
	SystemTypeJenkins,
	SystemTypeZuul,
}

// Job is a CI job configured on a System.
type Job struct {
	Name string
}

// System is a single CI installation, for example a Jenkins instance or a
// Zuul deployment, reachable through one or more Sources.
type System struct {
	Name       string
	SystemType string

	Sources Sources
	Jobs    []*Job

	enabled bool
}

func NewSystem(name string, systemType string) *System {
	return &System{
		Name:       name,
		SystemType: systemType,
		enabled:    true,
	}
}

func (s *System) AddSource(source *Source) {
	s.Sources = append(s.Sources, source)
}

func (s *System) AddJob(job *Job) {
	s.Jobs = append(s.Jobs, job)
}

func (s *System) Enable() {
	s.enabled = true
}

func (s *System) Disable() {
	s.enabled = false
}

func (s *System) IsEnabled() bool {
	return s.enabled
}

func (s *System) SourceNames() []string {
	return s.Sources.Names()
}

// EnabledSources returns the enabled sources ordered by descending priority.
// Sources sharing a priority keep their configured order.
func (s *System) EnabledSources() Sources {
	var sources Sources
	for _, source := range s.Sources {
		if source.IsEnabled() {
			sources = append(sources, source)
		}
	}
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Priority > sources[j].Priority
	})
	return sources
}

type Systems []*System

func (s Systems) Names() []string {
	names := make([]string, 0, len(s))
	for _, system := range s {
		names = append(names, system.Name)
	}
	return names
}

// SourceNames flattens the source names of every system, in order.
func (s Systems) SourceNames() []string {
	var names []string
	for _, system := range s {
		names = append(names, system.SourceNames()...)
	}
	return names
}
