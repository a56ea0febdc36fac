// internal/core/cache/ttl.go
package cache

import "time"

// TTLs holds the expiry tiers. External meeting state is the most volatile
// and stable internal lists live the longest.
type TTLs struct {
	Short      time.Duration
	BBB        time.Duration
	BBBRunning time.Duration
	Medium     time.Duration
	Long       time.Duration
}

// DefaultTTLs returns the standard tiers
func DefaultTTLs() TTLs {
	return TTLs{
		Short:      300 * time.Second,
		BBB:        180 * time.Second,
		BBBRunning: 60 * time.Second,
		Medium:     1800 * time.Second,
		Long:       3600 * time.Second,
	}
}

// WithDefaults fills zero tiers from DefaultTTLs
func (t TTLs) WithDefaults() TTLs {
	d := DefaultTTLs()
	if t.Short <= 0 {
		t.Short = d.Short
	}
	if t.BBB <= 0 {
		t.BBB = d.BBB
	}
	if t.BBBRunning <= 0 {
		t.BBBRunning = d.BBBRunning
	}
	if t.Medium <= 0 {
		t.Medium = d.Medium
	}
	if t.Long <= 0 {
		t.Long = d.Long
	}
	return t
}
