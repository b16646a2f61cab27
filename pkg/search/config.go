package search

import "fmt"

const (
	// AlphabetSize is the number of distinct symbols in a byte alphabet.
	AlphabetSize = 256

	// DefaultMaxPatternLength is the longest pattern a default Config accepts.
	DefaultMaxPatternLength = 100
)

var (
	ErrPatternTooLong = fmt.Errorf("search: pattern too long")
)

var defaultConfig = &Config{
	AlphabetSize:     AlphabetSize,
	MaxPatternLength: DefaultMaxPatternLength,
}

// Config holds the tunables for building FJS tables.
type Config struct {
	// AlphabetSize is the number of slots in the shift table. It is rounded
	// down to a power of two in [1, 256]; symbols share slot b&(AlphabetSize-1).
	AlphabetSize int

	// MaxPatternLength is the longest pattern Compile will accept.
	MaxPatternLength int
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	conf := *defaultConfig
	return &conf
}

func checkConfig(conf *Config) *Config {
	if conf == nil {
		return DefaultConfig()
	}
	c := *conf
	if c.AlphabetSize <= 0 || c.AlphabetSize > AlphabetSize {
		c.AlphabetSize = AlphabetSize
	}
	// round down to a power of two
	for c.AlphabetSize&(c.AlphabetSize-1) != 0 {
		c.AlphabetSize &= c.AlphabetSize - 1
	}
	if c.MaxPatternLength < 1 {
		c.MaxPatternLength = DefaultMaxPatternLength
	}
	return &c
}

// Compile checks the pattern length against the config and builds the
// tables for pattern.
func (conf *Config) Compile(pattern []byte) (*Pattern, error) {
	c := checkConfig(conf)
	if len(pattern) > c.MaxPatternLength {
		return nil, fmt.Errorf("%w: length %d exceeds maximum of %d",
			ErrPatternTooLong, len(pattern), c.MaxPatternLength)
	}
	return compile(pattern, c.AlphabetSize), nil
}

// Search reports every match of pattern in text to fn, in increasing order.
func (conf *Config) Search(pattern, text []byte, fn MatchFunc) error {
	if len(pattern) == 0 {
		return nil
	}
	p, err := conf.Compile(pattern)
	if err != nil {
		return err
	}
	p.Search(text, fn)
	return nil
}
