package casefile

// Case is a named pair of texts to compare, with optional expectations.
type Case struct {
	Name  string `json:"name" yaml:"name"`
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
	// Identical, when set, is the expected identical/different verdict.
	Identical *bool `json:"identical,omitempty" yaml:"identical,omitempty"`
	// Changes, when set, is the expected number of change records.
	Changes *int     `json:"changes,omitempty" yaml:"changes,omitempty"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
