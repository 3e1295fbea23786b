package models

import (
	"fmt"
	"strings"
)

// CampaignKey is the composite natural key of a campaign. It is a comparable
// value type and the only way any relation refers to a campaign, so a
// reference always carries all three parts.
type CampaignKey struct {
	Issue     string
	Location  string
	StartDate Date
}

// NewCampaignKey builds a key from raw CLI input.
func NewCampaignKey(issue, location, startDate string) (CampaignKey, error) {
	d, err := ParseDate(startDate)
	if err != nil {
		return CampaignKey{}, fmt.Errorf("campaign start date: %w", err)
	}
	k := CampaignKey{
		Issue:     strings.TrimSpace(issue),
		Location:  strings.TrimSpace(location),
		StartDate: d,
	}
	if err := k.Validate(); err != nil {
		return CampaignKey{}, err
	}
	return k, nil
}

// Validate checks that every part of the key is present.
func (k CampaignKey) Validate() error {
	switch {
	case k.Issue == "":
		return fmt.Errorf("campaign issue is required")
	case k.Location == "":
		return fmt.Errorf("campaign location is required")
	case k.StartDate.IsZero():
		return fmt.Errorf("campaign start date is required")
	}
	return nil
}

// String renders the key as issue/location/YYYY-MM-DD.
func (k CampaignKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Issue, k.Location, k.StartDate)
}

// Less orders keys by issue, then location, then start date.
func (k CampaignKey) Less(o CampaignKey) bool {
	if k.Issue != o.Issue {
		return k.Issue < o.Issue
	}
	if k.Location != o.Location {
		return k.Location < o.Location
	}
	return k.StartDate.Before(o.StartDate)
}
