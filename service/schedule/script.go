package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Script replays fixed per-seat durations: seat i thinks
// ThinkUnits[i % len(ThinkUnits)] and eats EatUnits[i % len(EatUnits)] units
// on every cycle.
type Script struct {
	Unit       time.Duration `json:"unit" yaml:"unit"`
	ThinkUnits []int         `json:"think" yaml:"think"`
	EatUnits   []int         `json:"eat" yaml:"eat"`
}

// Validate returns an error describing invalid script or nil
func (s *Script) Validate() error {
	if s.Unit <= 0 {
		return fmt.Errorf("%w: script unit must be > 0", ErrInvalid)
	}
	if len(s.ThinkUnits) == 0 || len(s.EatUnits) == 0 {
		return fmt.Errorf("%w: script requires think and eat durations", ErrInvalid)
	}
	for _, values := range [][]int{s.ThinkUnits, s.EatUnits} {
		for _, v := range values {
			if v < 0 {
				return fmt.Errorf("%w: negative duration %d", ErrInvalid, v)
			}
		}
	}
	return nil
}

// Think returns thinking duration for seat
func (s *Script) Think(seat int) time.Duration {
	return time.Duration(s.ThinkUnits[seat%len(s.ThinkUnits)]) * s.Unit
}

// Eat returns eating duration for seat
func (s *Script) Eat(seat int) time.Duration {
	return time.Duration(s.EatUnits[seat%len(s.EatUnits)]) * s.Unit
}

// MaxCycle returns the longest think+eat cycle
func (s *Script) MaxCycle() time.Duration {
	return time.Duration(maxOf(s.ThinkUnits)+maxOf(s.EatUnits)) * s.Unit
}

func maxOf(values []int) int {
	ret := 0
	for _, v := range values {
		ret = max(ret, v)
	}
	return ret
}

// DecodeYAML decodes and validates a script
func DecodeYAML(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("failed to decode schedule script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Load loads a YAML script from URL using the supplied file system
func Load(ctx context.Context, fs afs.Service, URL string) (*Script, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule script %s: %w", URL, err)
	}
	return DecodeYAML(data)
}
