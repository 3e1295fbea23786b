// Package accounting computes budget coverage per campaign.
//
// Coverage is total donations over budget, as a percentage. A campaign with a
// zero budget has no coverage figure at all: it is reported as not applicable
// rather than as zero, infinity, or an error. Every campaign appears in the
// result, including campaigns nobody has donated to.
package accounting

import (
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/example/outreach/internal/models"
)

// BarScale is the bar width, in characters, that represents 100% coverage.
const BarScale = 50

// Campaign is the slice of a campaign the aggregator needs.
type Campaign struct {
	Key    models.CampaignKey
	Budget models.Money
}

// Donation is the slice of a donation the aggregator needs.
type Donation struct {
	Key    models.CampaignKey
	Amount models.Money
}

// Line is one campaign's row in the coverage report.
type Line struct {
	Key            models.CampaignKey
	Budget         models.Money
	TotalDonations models.Money

	// Applicable is false when the budget is zero; Coverage and BarLength
	// are meaningless then.
	Applicable bool
	Coverage   float64
	BarLength  int
}

// Bar renders the line's coverage bar, or "" when not applicable.
func (l Line) Bar() string {
	if !l.Applicable {
		return ""
	}
	return strings.Repeat("#", l.BarLength)
}

// Compute totals donations per campaign by exact key match and derives the
// coverage line for every campaign. Lines are ordered by issue, then location,
// then start date. Donations pointing at a key outside campaigns are ignored.
func Compute(campaigns []Campaign, donations []Donation) []Line {
	totals := make(map[models.CampaignKey]models.Money, len(campaigns))
	for _, d := range donations {
		totals[d.Key] = totals[d.Key].Add(d.Amount)
	}

	lines := make([]Line, 0, len(campaigns))
	for _, c := range campaigns {
		lines = append(lines, lineFor(c, totals[c.Key]))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Key.Less(lines[j].Key)
	})
	return lines
}

func lineFor(c Campaign, total models.Money) Line {
	line := Line{
		Key:            c.Key,
		Budget:         c.Budget,
		TotalDonations: total,
	}
	if c.Budget.Cents <= 0 {
		return line
	}

	line.Applicable = true
	line.Coverage = float64(total.Cents) / float64(c.Budget.Cents) * 100
	line.BarLength = barLength(total.Cents, c.Budget.Cents)
	return line
}

// barLength is floor(total*BarScale/budget) in exact integer arithmetic; no
// clamping above 100%. Products past int64 go through math/big.
func barLength(total, budget int64) int {
	if total <= math.MaxInt64/BarScale {
		return int(total * BarScale / budget)
	}
	n := new(big.Int).Mul(big.NewInt(total), big.NewInt(BarScale))
	n.Quo(n, big.NewInt(budget))
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return math.MaxInt
	}
	return int(n.Int64())
}
