package convert

import (
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/ddsbatch/pkg/encoder"
	"github.com/arthur-debert/ddsbatch/pkg/rules"
)

// Outcome is what happened to one image
type Outcome int

const (
	// Converted: the encoder succeeded and the source was deleted
	Converted Outcome = iota
	// Failed: the encoder failed, or the source could not be deleted
	Failed
	// Planned: dry run, the invocation was built but not executed
	Planned
	// Excluded: an exclude rule matched, the encoder was not invoked
	Excluded
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case Failed:
		return "failed"
	case Planned:
		return "planned"
	case Excluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// Result reports the handling of one image
type Result struct {
	Path           rules.TexturePath
	Abs            string
	Outcome        Outcome
	Classification rules.Classification
	Invocation     encoder.Invocation
	Err            error
}

// Failure is a failed image in the summary
type Failure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// Summary aggregates the results of a batch
type Summary struct {
	Root       string        `json:"root" yaml:"root"`
	DryRun     bool          `json:"dryRun" yaml:"dry_run"`
	Discovered int           `json:"discovered" yaml:"discovered"`
	Excluded   int           `json:"excluded" yaml:"excluded"`
	Converted  int           `json:"converted" yaml:"converted"`
	Failed     int           `json:"failed" yaml:"failed"`
	Planned    int           `json:"planned" yaml:"planned"`
	Failures   []Failure     `json:"failures,omitempty" yaml:"failures,omitempty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Cancelled  bool          `json:"cancelled,omitempty" yaml:"cancelled,omitempty"`

	mu sync.Mutex
}

func (s *Summary) discover() {
	s.mu.Lock()
	s.Discovered++
	s.mu.Unlock()
}

// record adds r and calls observe while holding the lock, so observers
// never run concurrently
func (s *Summary) record(r Result, observe func(Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.Outcome {
	case Converted:
		s.Converted++
	case Failed:
		s.Failed++
		msg := ""
		if r.Err != nil {
			msg = r.Err.Error()
		}
		s.Failures = append(s.Failures, Failure{Path: string(r.Path), Error: msg})
	case Planned:
		s.Planned++
	case Excluded:
		s.Excluded++
	}

	if observe != nil {
		observe(r)
	}
}

func (s *Summary) finish(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Duration = elapsed
	sort.Slice(s.Failures, func(i, j int) bool {
		return s.Failures[i].Path < s.Failures[j].Path
	})
}

// Attempted is the number of encoder invocations
func (s *Summary) Attempted() int {
	return s.Converted + s.Failed
}

// HasFailures reports whether any image failed
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}

// AllFailed reports whether the encoder was invoked at least once and never
// succeeded, which usually means the encoder binary is wrong
func (s *Summary) AllFailed() bool {
	return s.Attempted() > 0 && s.Converted == 0
}
