package schedule

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Config represents random schedule configuration, durations are expressed
// in whole Units drawn uniformly from [Min, Max].
type Config struct {
	Unit     time.Duration `json:"unit" yaml:"unit" mapstructure:"unit"`
	ThinkMin int           `json:"thinkMin" yaml:"thinkMin" mapstructure:"thinkMin"`
	ThinkMax int           `json:"thinkMax" yaml:"thinkMax" mapstructure:"thinkMax"`
	EatMin   int           `json:"eatMin" yaml:"eatMin" mapstructure:"eatMin"`
	EatMax   int           `json:"eatMax" yaml:"eatMax" mapstructure:"eatMax"`
	Seed     int64         `json:"seed" yaml:"seed" mapstructure:"seed"`
}

// DefaultConfig returns thinking for 1-6 and eating for 1-4 seconds
func DefaultConfig() Config {
	return Config{
		Unit:     time.Second,
		ThinkMin: 1,
		ThinkMax: 6,
		EatMin:   1,
		EatMax:   4,
	}
}

// Validate returns an error describing invalid settings or nil
func (c Config) Validate() error {
	switch {
	case c.Unit <= 0:
		return fmt.Errorf("%w: unit must be > 0", ErrInvalid)
	case c.ThinkMin < 0 || c.ThinkMax < c.ThinkMin:
		return fmt.Errorf("%w: think range [%d,%d]", ErrInvalid, c.ThinkMin, c.ThinkMax)
	case c.EatMin < 0 || c.EatMax < c.EatMin:
		return fmt.Errorf("%w: eat range [%d,%d]", ErrInvalid, c.EatMin, c.EatMax)
	}
	return nil
}

type source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *source) between(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.Intn(hi-lo+1)
}

// Random draws uniformly distributed durations; every seat owns a source
// derived from the seed, so a seat's sequence does not depend on scheduling.
type Random struct {
	config  Config
	sources []*source
}

// NewRandom creates a random schedule for size seats
func NewRandom(size int, config Config) (*Random, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	ret := &Random{config: config, sources: make([]*source, size)}
	for i := range ret.sources {
		ret.sources[i] = &source{rnd: rand.New(rand.NewSource(config.Seed + int64(i)))}
	}
	return ret, nil
}

// Think returns next thinking duration for seat
func (r *Random) Think(seat int) time.Duration {
	return time.Duration(r.sources[seat].between(r.config.ThinkMin, r.config.ThinkMax)) * r.config.Unit
}

// Eat returns next eating duration for seat
func (r *Random) Eat(seat int) time.Duration {
	return time.Duration(r.sources[seat].between(r.config.EatMin, r.config.EatMax)) * r.config.Unit
}

// MaxCycle returns the longest think+eat cycle
func (r *Random) MaxCycle() time.Duration {
	return time.Duration(r.config.ThinkMax+r.config.EatMax) * r.config.Unit
}
