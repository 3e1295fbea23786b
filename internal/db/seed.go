package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures: a handful of
// entities across every role, three campaigns (one without a budget), and the
// activity rows that make each report non-trivial.
func SeedFixtures(ctx context.Context, database *sql.DB, driver string) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	exec := func(table, query string, args ...any) error {
		if _, err := tx.ExecContext(ctx, Rebind(driver, query), args...); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
		return nil
	}

	entities := []struct{ email, name string }{
		{"ada@example.org", "Ada Lovelace"},
		{"grace@example.org", "Grace Hopper"},
		{"alan@example.org", "Alan Turing"},
		{"edsger@example.org", "Edsger Dijkstra"},
	}
	for _, e := range entities {
		if err := exec("entity", "INSERT INTO entity (email, name) VALUES (?, ?)", e.email, e.name); err != nil {
			return err
		}
	}

	if err := exec("member", "INSERT INTO member (entity_email) VALUES (?)", "ada@example.org"); err != nil {
		return err
	}
	if err := exec("employee", "INSERT INTO employee (entity_email) VALUES (?)", "edsger@example.org"); err != nil {
		return err
	}
	for _, v := range []struct{ email, tier string }{
		{"grace@example.org", "gold"},
		{"alan@example.org", "bronze"},
	} {
		if err := exec("volunteer", "INSERT INTO volunteer (entity_email, tier) VALUES (?, ?)", v.email, v.tier); err != nil {
			return err
		}
	}

	campaigns := []struct {
		issue, location, start string
		duration               int
		phase                  string
		budgetCents            int64
		pushDate               any
	}{
		{"Clean Water", "Vancouver", "2024-03-01", 90, "active", 500000, "2024-02-15"},
		{"Parks", "Burnaby", "2024-05-10", 30, "planning", 120000, nil},
		{"Housing", "Surrey", "2024-06-01", 60, "planning", 0, nil},
	}
	for _, c := range campaigns {
		if err := exec("campaigns",
			`INSERT INTO campaigns (issue, location, start_date, duration_days, phase, budget_cents, website_push_date, annotations)
			 VALUES (?, ?, ?, ?, ?, ?, ?, '')`,
			c.issue, c.location, c.start, c.duration, c.phase, c.budgetCents, c.pushDate,
		); err != nil {
			return err
		}
	}

	donations := []struct {
		email, issue, location, start, date string
		amountCents                         int64
	}{
		{"ada@example.org", "Clean Water", "Vancouver", "2024-03-01", "2024-03-05", 250000},
		{"ada@example.org", "Parks", "Burnaby", "2024-05-10", "2024-05-12", 30000},
		{"grace@example.org", "Clean Water", "Vancouver", "2024-03-01", "2024-03-20", 125050},
	}
	for _, d := range donations {
		if err := exec("donations",
			`INSERT INTO donations (entity_email, campaign_issue, campaign_location, campaign_start_date, donation_date, amount_cents)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			d.email, d.issue, d.location, d.start, d.date, d.amountCents,
		); err != nil {
			return err
		}
	}

	history := []struct {
		email, issue, location, start, from string
		to                                  any
		notes                               string
	}{
		{"grace@example.org", "Clean Water", "Vancouver", "2024-03-01", "2024-03-01", nil, "canvassing lead"},
		{"alan@example.org", "Clean Water", "Vancouver", "2024-03-01", "2024-03-01", "2024-04-01", ""},
	}
	for _, h := range history {
		if err := exec("membership_history",
			`INSERT INTO membership_history (entity_email, campaign_issue, campaign_location, campaign_start_date, involvement_start_date, involvement_end_date, annotations)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			h.email, h.issue, h.location, h.start, h.from, h.to, h.notes,
		); err != nil {
			return err
		}
	}

	for _, s := range []struct{ email, issue, location, start, date string }{
		{"grace@example.org", "Parks", "Burnaby", "2024-05-10", "2024-05-11"},
		{"alan@example.org", "Parks", "Burnaby", "2024-05-10", "2024-05-18"},
	} {
		if err := exec("scheduled",
			`INSERT INTO scheduled (entity_email, campaign_issue, campaign_location, campaign_start_date, scheduled_date)
			 VALUES (?, ?, ?, ?, ?)`,
			s.email, s.issue, s.location, s.start, s.date,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}
