// Package ghostconfig (de)serializes ghost.Options to and from YAML, the
// corpus's own configuration format (gopkg.in/yaml.v3), so cmd/ghost-demo's
// --config flag doesn't require a recompile to retune the engine.
// pkg/driver does not use this package.
package ghostconfig

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/richoux/ghost-go/pkg/ghost"
)

// Document is the YAML-serializable mirror of ghost.Options. Every field
// is a pointer so an absent key in the document leaves the corresponding
// ghost.Options field at whatever the caller's base value already was,
// rather than silently zeroing it - YAML documents are meant to override a
// subset of the defaults, not replace them wholesale.
type Document struct {
	TimeoutMS                 *int64   `yaml:"timeout_ms"`
	NoRandomStartingPoint     *bool    `yaml:"no_random_starting_point"`
	Permutation               *bool    `yaml:"permutation"`
	Seed                      *int64   `yaml:"seed"`
	RunID                     *string  `yaml:"run_id"`
	TabuTimeLocalMin          *int     `yaml:"tabu_time_local_min"`
	TabuTimeSelected          *int     `yaml:"tabu_time_selected"`
	ResetThreshold            *int     `yaml:"reset_threshold"`
	RestartThreshold          *int     `yaml:"restart_threshold"`
	PercentToReset            *int     `yaml:"percent_to_reset"`
	ResumeSearch              *bool    `yaml:"resume_search"`
	ParallelRuns              *int     `yaml:"parallel_runs"`
	NumberThreads             *int     `yaml:"number_threads"`
	NumberStartSamplings      *int     `yaml:"number_start_samplings"`
	PlateauRestartProbability *float64 `yaml:"plateau_restart_probability"`
	DebugAssertions           *bool    `yaml:"debug_assertions"`
}

// Load reads a YAML document from path and applies every field it sets
// onto base, returning the merged Options. base is typically
// ghost.DefaultOptions().
func Load(path string, base ghost.Options) (ghost.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return base, err
	}
	return doc.Apply(base), nil
}

// Apply merges every set field of doc onto base and returns the result.
func (doc Document) Apply(base ghost.Options) ghost.Options {
	o := base
	if doc.TimeoutMS != nil {
		o.Timeout = time.Duration(*doc.TimeoutMS) * time.Millisecond
	}
	if doc.NoRandomStartingPoint != nil {
		o.NoRandomStartingPoint = *doc.NoRandomStartingPoint
	}
	if doc.Permutation != nil {
		o.Permutation = *doc.Permutation
	}
	if doc.Seed != nil {
		o.Seed = *doc.Seed
	}
	if doc.RunID != nil {
		o.RunID = *doc.RunID
	}
	if doc.TabuTimeLocalMin != nil {
		o.TabuTimeLocalMin = *doc.TabuTimeLocalMin
	}
	if doc.TabuTimeSelected != nil {
		o.TabuTimeSelected = *doc.TabuTimeSelected
	}
	if doc.ResetThreshold != nil {
		o.ResetThreshold = *doc.ResetThreshold
	}
	if doc.RestartThreshold != nil {
		o.RestartThreshold = *doc.RestartThreshold
	}
	if doc.PercentToReset != nil {
		o.PercentToReset = *doc.PercentToReset
	}
	if doc.ResumeSearch != nil {
		o.ResumeSearch = *doc.ResumeSearch
	}
	if doc.ParallelRuns != nil {
		o.ParallelRuns = *doc.ParallelRuns
	}
	if doc.NumberThreads != nil {
		o.NumberThreads = *doc.NumberThreads
	}
	if doc.NumberStartSamplings != nil {
		o.NumberStartSamplings = *doc.NumberStartSamplings
	}
	if doc.PlateauRestartProbability != nil {
		o.PlateauRestartProbability = *doc.PlateauRestartProbability
	}
	if doc.DebugAssertions != nil {
		o.DebugAssertions = *doc.DebugAssertions
	}
	return o
}

// Save writes opts to path as YAML, the inverse of Load, useful for
// dumping an engine-chosen default configuration as a starting point for
// hand-tuning.
func Save(path string, opts ghost.Options) error {
	doc := Document{
		TimeoutMS:                 int64Ptr(int64(opts.Timeout / time.Millisecond)),
		NoRandomStartingPoint:     boolPtr(opts.NoRandomStartingPoint),
		Permutation:               boolPtr(opts.Permutation),
		Seed:                      int64Ptr(opts.Seed),
		RunID:                     stringPtr(opts.RunID),
		TabuTimeLocalMin:          intPtr(opts.TabuTimeLocalMin),
		TabuTimeSelected:          intPtr(opts.TabuTimeSelected),
		ResetThreshold:            intPtr(opts.ResetThreshold),
		RestartThreshold:          intPtr(opts.RestartThreshold),
		PercentToReset:            intPtr(opts.PercentToReset),
		ResumeSearch:              boolPtr(opts.ResumeSearch),
		ParallelRuns:              intPtr(opts.ParallelRuns),
		NumberThreads:             intPtr(opts.NumberThreads),
		NumberStartSamplings:      intPtr(opts.NumberStartSamplings),
		PlateauRestartProbability: float64Ptr(opts.PlateauRestartProbability),
		DebugAssertions:           boolPtr(opts.DebugAssertions),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func int64Ptr(v int64) *int64       { return &v }
func intPtr(v int) *int             { return &v }
func boolPtr(v bool) *bool          { return &v }
func stringPtr(v string) *string    { return &v }
func float64Ptr(v float64) *float64 { return &v }
