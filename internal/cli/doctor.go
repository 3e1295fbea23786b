package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/outreach/internal/config"
	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/version"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate configuration and store health",
		Long: `Health check for outreach.

Validates:
- Configuration (file, .env, OUTREACH_* variables)
- Data directory (SQLite only)
- Store reachability
- Schema migration version

Examples:
  outreach doctor              # Run full health check
  outreach doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Root().PersistentFlags().GetString("config")
			results := runChecks(context.Background(), configPath)

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Check              Status")
				fmt.Fprintln(out, "─────────────────────────")
				for _, r := range results {
					fmt.Fprintf(out, "%-18s %s\n", r.Name, r.Status)
				}
				fmt.Fprintln(out)

				// Print details for non-passing checks
				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Fprintln(out, "Details:")
							hasDetails = true
						}
						fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Fprintln(out, "\n⚠ Issues found.")
				} else {
					fmt.Fprintf(out, "All checks passed. (%s)\n", version.String())
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// runChecks runs every check in order; later checks are skipped once the
// configuration or store is unusable.
func runChecks(ctx context.Context, configPath string) []CheckResult {
	cfg, result := checkConfig(configPath)
	results := []CheckResult{result}
	if cfg == nil {
		return results
	}

	if cfg.Database.Driver == config.DriverSQLite {
		results = append(results, checkDataDir(cfg.Database.URL))
	}

	database, result := checkStore(ctx, cfg)
	results = append(results, result)
	if database == nil {
		return results
	}
	defer database.Close()

	return append(results, checkSchema(database, cfg))
}

func checkConfig(path string) (*config.Config, CheckResult) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return nil, CheckResult{Name: "Config", Status: "✗", Details: "  " + err.Error()}
	}
	return cfg, CheckResult{Name: "Config", Status: "✓"}
}

func checkDataDir(dbPath string) CheckResult {
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Data Directory",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s does not exist yet (created on first use)", dir),
		}
	}
	return CheckResult{Name: "Data Directory", Status: "✓"}
}

func checkStore(ctx context.Context, cfg *config.Config) (*sql.DB, CheckResult) {
	database, err := db.Connect(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return nil, CheckResult{
			Name:    "Store",
			Status:  "✗",
			Details: fmt.Sprintf("  %s (%s)\n  %v", cfg.SanitizedURL(), cfg.Database.Driver, err),
		}
	}
	return database, CheckResult{Name: "Store", Status: "✓"}
}

func checkSchema(database *sql.DB, cfg *config.Config) CheckResult {
	v, dirty, err := db.SchemaVersion(database, cfg.Database.Driver, cfg.Database.URL)
	switch {
	case err != nil:
		return CheckResult{Name: "Schema", Status: "✗", Details: "  " + err.Error()}
	case dirty:
		return CheckResult{
			Name:    "Schema",
			Status:  "✗",
			Details: fmt.Sprintf("  migration %d left the schema dirty; fix it by hand, then force the version", v),
		}
	case v == 0:
		return CheckResult{
			Name:    "Schema",
			Status:  "⚠",
			Details: "  no migrations applied yet\n  Run: outreach db migrate",
		}
	}
	return CheckResult{Name: "Schema", Status: "✓"}
}
