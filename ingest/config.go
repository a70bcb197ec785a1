package ingest

import (
	"fmt"
	"runtime"
	"time"

	"github.com/poiesic/corpora/core"
)

// Config holds the options for a preprocessing run.
type Config struct {
	// Table is the name of the sentence table to populate.
	Table string

	// Fresh requests a full preprocessing run. When false the run is a
	// no-op that reuses whatever the named table already holds.
	Fresh bool

	// StemWords reduces tokens to their Snowball English stems.
	StemWords bool

	// RemoveNumeric drops tokens that do not begin with a letter.
	RemoveNumeric bool

	// ChunkSize is the number of articles handed to each worker task.
	ChunkSize int

	// SampleSize caps the number of body sentences kept per article.
	SampleSize int

	// PoolSize is the number of concurrent worker goroutines.
	PoolSize int

	// MaxAttempts bounds retries of contended table appends.
	MaxAttempts int

	// RetryDelay is the fixed delay between append retries.
	RetryDelay time.Duration

	// ReportInterval controls how often progress is reported, in articles.
	ReportInterval int
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		Table:          "sentences",
		ChunkSize:      1000,
		SampleSize:     20,
		PoolSize:       runtime.NumCPU(),
		MaxAttempts:    5,
		RetryDelay:     2 * time.Second,
		ReportInterval: 10,
	}
}

// normalize fills zero-valued fields with their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Table == "" {
		c.Table = def.Table
	}
	if c.ChunkSize < 1 {
		c.ChunkSize = def.ChunkSize
	}
	if c.SampleSize < 1 {
		c.SampleSize = def.SampleSize
	}
	if c.PoolSize < 1 {
		c.PoolSize = def.PoolSize
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = def.RetryDelay
	}
	if c.ReportInterval < 1 {
		c.ReportInterval = def.ReportInterval
	}
}

// Fingerprint hashes the options that affect row contents. Two runs with the
// same fingerprint over the same corpus produce equivalent tables (modulo
// body sampling), so the fingerprint is recorded in the table's run marker.
func (c Config) Fingerprint() core.ID {
	return core.IDFromContent(fmt.Sprintf("stem=%t;numeric=%t;sample=%d", c.StemWords, c.RemoveNumeric, c.SampleSize))
}
