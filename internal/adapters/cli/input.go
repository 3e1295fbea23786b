// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

// KeyArgs is a campaign key as typed on the command line.
type KeyArgs struct {
	Issue     string
	Location  string
	StartDate string
}

func (k KeyArgs) parse() (models.CampaignKey, error) {
	key, err := models.NewCampaignKey(k.Issue, k.Location, k.StartDate)
	if err != nil {
		return models.CampaignKey{}, fmt.Errorf("%w: %v", models.ErrInvalidCampaign, err)
	}
	return key, nil
}

// parseActivityDate parses a required activity date.
func parseActivityDate(field, s string) (models.Date, error) {
	if s == "" {
		return models.Date{}, fmt.Errorf("%w: %s is required", models.ErrInvalidActivity, field)
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %s: %v", models.ErrInvalidActivity, field, err)
	}
	return d, nil
}

// printOutcome writes a mutation outcome line: ✓ when rows were written,
// - when the target matched nothing.
func printOutcome(out io.Writer, res *primary.MutationResult) {
	if res.NoMatch {
		fmt.Fprintf(out, "%s %s\n", color.New(color.FgYellow).Sprint("-"), res.Message)
		return
	}
	fmt.Fprintf(out, "✓ %s\n", capitalize(res.Message))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
