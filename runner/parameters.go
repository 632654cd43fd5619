package runner

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/falsify/internal/corpus"
)

// Verbosity controls how much diagnostic detail a report includes. Levels
// are ordered: each level includes everything the levels below it show.
type Verbosity int

const (
	// None reports only the failure message.
	None Verbosity = iota
	// Verbose adds the flattened list of failing values encountered.
	Verbose
	// VeryVerbose adds the full execution summary tree.
	VeryVerbose
)

func (v Verbosity) String() string {
	switch v {
	case None:
		return "none"
	case Verbose:
		return "verbose"
	case VeryVerbose:
		return "very-verbose"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}

// MarshalYAML renders the level by name.
func (v Verbosity) MarshalYAML() (any, error) {
	return v.String(), nil
}

// ParseVerbosity converts a level name ("none", "verbose", "very-verbose")
// into the corresponding Verbosity.
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return None, nil
	case "verbose":
		return Verbose, nil
	case "very-verbose", "veryverbose":
		return VeryVerbose, nil
	default:
		return None, fmt.Errorf("unknown verbosity %q", name)
	}
}

// UnmarshalYAML accepts either a level name or its ordinal.
func (v *Verbosity) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err == nil {
		level, err := ParseVerbosity(name)
		if err != nil {
			return err
		}
		*v = level
		return nil
	}
	var ord int
	if err := node.Decode(&ord); err != nil {
		return fmt.Errorf("verbosity must be a name or an integer")
	}
	if ord < int(None) || ord > int(VeryVerbose) {
		return fmt.Errorf("verbosity ordinal %d out of range", ord)
	}
	*v = Verbosity(ord)
	return nil
}

// Parameters configures a single property run.
//
// The zero value is usable: Check fills NumRuns, MaxShrinks and Seed with
// defaults when unset. MaxSkipsPerRun is meaningful at zero (no skip
// tolerance at all), so it is never defaulted implicitly; start from
// DefaultParameters to get the usual tolerance.
type Parameters struct {
	// Name identifies the property in corpus entries and console output.
	Name string `yaml:"name"`
	// NumRuns is the number of passing trials required. Defaults to 100.
	NumRuns int `yaml:"num_runs"`
	// Seed keys the random sequence. Zero means derive one from the
	// clock; the derived seed is recorded in the run's Statistics.
	Seed int64 `yaml:"seed"`
	// MaxSkipsPerRun is the tolerated ratio of skipped to required
	// trials. The total attempt budget is NumRuns*(1+MaxSkipsPerRun).
	MaxSkipsPerRun int `yaml:"max_skips_per_run"`
	// MaxShrinks bounds how many shrink candidates are evaluated after
	// the first failure. Defaults to 1000.
	MaxShrinks int `yaml:"max_shrinks"`
	// Timeout interrupts the run once elapsed. Zero means no limit. In
	// YAML it is written as a duration string ("30s", "2m").
	Timeout time.Duration `yaml:"-"`
	// Verbosity selects report detail.
	Verbosity Verbosity `yaml:"verbosity"`
	// Corpus, when set, is consulted for known counterexamples before
	// random trials and receives any new falsification found.
	Corpus *corpus.Store `yaml:"-"`
}

// DefaultParameters returns the standard configuration: 100 runs, a skip
// tolerance of 100 per run, and up to 1000 shrink candidates.
func DefaultParameters() Parameters {
	return Parameters{
		NumRuns:        100,
		MaxSkipsPerRun: 100,
		MaxShrinks:     1000,
	}
}

// LoadParameters reads Parameters from a YAML file, starting from
// DefaultParameters and overlaying whatever the file sets.
func LoadParameters(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("read parameters file: %w", err)
	}
	params := DefaultParameters()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return Parameters{}, fmt.Errorf("parse parameters file %s: %w", path, err)
	}

	// Durations read as strings so files can say "30s" rather than
	// nanosecond counts.
	var timed struct {
		Timeout string `yaml:"timeout"`
	}
	if err := yaml.Unmarshal(data, &timed); err == nil && timed.Timeout != "" {
		d, err := time.ParseDuration(timed.Timeout)
		if err != nil {
			return Parameters{}, fmt.Errorf("parse timeout in %s: %w", path, err)
		}
		params.Timeout = d
	}
	return params, nil
}

// normalized fills the defaulted fields Check relies on.
func (p Parameters) normalized() Parameters {
	if p.NumRuns <= 0 {
		p.NumRuns = 100
	}
	if p.MaxShrinks <= 0 {
		p.MaxShrinks = 1000
	}
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	return p
}
