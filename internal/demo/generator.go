// Package demo produces synthetic payloads shaped exactly like the live
// upstream responses, so pages render identically in either mode.
package demo

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/cloudcanvas/compliance-canvas/internal/models"
)

// Generator produces randomized sample data from a seedable PRNG.
// Production seeds from the clock; tests pass a fixed seed to get
// reproducible output.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock replaces the time source, used by tests to pin "today"
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator. A zero seed falls back to the current time.
func New(seed int64, opts ...Option) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// intn returns a random int in [0, n)
func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// between returns a random int in [min, max]
func (g *Generator) between(min, max int) int {
	return min + g.intn(max-min+1)
}

// uniform returns a random float in [min, max)
func (g *Generator) uniform(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rnd.Float64()*(max-min)
}

// choice picks one element at random
func (g *Generator) choice(options []string) string {
	return options[g.intn(len(options))]
}

// weightedSeverity picks a severity using the 5/15/30/30/20 distribution
// the upstream demo data uses
func (g *Generator) weightedSeverity() models.Severity {
	weights := []int{5, 15, 30, 30, 20}
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := g.intn(total)
	for i, w := range weights {
		if pick < w {
			return models.Severities[i]
		}
		pick -= w
	}
	return models.SeverityInformational
}

// round2 rounds a currency amount to cents
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 rounds sub-cent unit costs to four decimal places
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// dateSeries returns exactly days consecutive calendar dates ending today
func (g *Generator) dateSeries(days int) []string {
	dates := make([]string, 0, days)
	today := g.now()
	for i := days - 1; i >= 0; i-- {
		dates = append(dates, today.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

// accountID returns a random 12-digit account identifier
func (g *Generator) accountID() string {
	return fmt.Sprintf("%012d", 100000000000+g.intn(899999999))
}

// isoDaysAgo returns an RFC3339 timestamp up to maxDays in the past
func (g *Generator) isoDaysAgo(maxDays int) string {
	return g.now().AddDate(0, 0, -g.intn(maxDays+1)).Format(time.RFC3339)
}

var regions = []string{"us-east-1", "us-west-2", "eu-west-1", "ap-southeast-1"}

var resourceTypes = []string{
	"AWS::EC2::Instance",
	"AWS::S3::Bucket",
	"AWS::IAM::Role",
	"AWS::RDS::DBInstance",
	"AWS::Lambda::Function",
	"AWS::EKS::Cluster",
}
