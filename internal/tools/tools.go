// Package tools holds the bodies of the operational one-shot executables
// under cmd/. Each constructor returns a runner.Func that prints its results
// to the writer it is given.
package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/models"
	"github.com/nstc-app/management/internal/runner"
	"github.com/nstc-app/management/internal/services"
)

// ErrSchemaIncomplete is returned by VerifySchema when required columns are missing.
var ErrSchemaIncomplete = errors.New("missing required schema columns")

// RequiredColumns are the columns the application refuses to deploy without.
var RequiredColumns = []services.ColumnRequirement{
	{Table: "audit_logs", Column: "user_name", Note: "audit actor column"},
	{Table: "audit_logs", Column: "module", Note: "audit module tag"},
	{Table: "workers", Column: "status", Note: "active worker filter"},
	{Table: "attendance", Column: "date", Note: "attendance day"},
	{Table: "warehouses", Column: "name", Note: "warehouse natural key"},
	{Table: "projects", Column: "status", Note: "project status column"},
}

// DebugDB prints basic table counts to prove the store is reachable.
func DebugDB() runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		fmt.Fprintln(out, "Testing DB Connection...")
		counts, err := services.NewDiagnosticsService(db).Counts(ctx)
		if err != nil {
			return fmt.Errorf("DB error: %w", err)
		}
		fmt.Fprintf(out, "User count: %d\n", counts.Users)
		fmt.Fprintf(out, "Worker count: %d\n", counts.Workers)
		fmt.Fprintf(out, "Attendance count: %d\n", counts.Attendance)
		fmt.Fprintf(out, "Active workers: %d\n", counts.ActiveWorkers)
		return nil
	}
}

// AddWarehouse upserts one warehouse by name.
func AddWarehouse(name, location string) runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		fmt.Fprintf(out, "Adding %s Warehouse...\n", name)
		wh, created, err := services.NewSeedService(db).UpsertWarehouse(ctx, name, location)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "✓ Created warehouse: %s (id %d, location %q)\n", wh.Name, wh.ID, wh.Location)
		} else {
			fmt.Fprintf(out, "  Warehouse already exists: %s (id %d, location %q)\n", wh.Name, wh.ID, wh.Location)
		}
		return nil
	}
}

// AdminAccount describes the optional manager account created by Seed.
type AdminAccount struct {
	Username string
	Password string
}

// Seed upserts the lookup tables and, when a password is configured, a manager account.
func Seed(admin AdminAccount) runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		svc := services.NewSeedService(db)

		fmt.Fprintln(out, "Seeding lookup tables...")
		summary, err := svc.SeedLookups(ctx)
		if err != nil {
			return err
		}
		printSeedResults(out, "warehouse", summary.Warehouses)
		fmt.Fprintln(out, "Warehouses seeded.")
		printSeedResults(out, "region", summary.Regions)
		fmt.Fprintln(out, "Regions seeded.")
		printSeedResults(out, "project", summary.Projects)
		fmt.Fprintln(out, "Projects seeded.")

		if admin.Password == "" {
			fmt.Fprintln(out, "  No default admin password configured, skipping manager account")
			return nil
		}
		user, created, err := svc.EnsureUser(ctx, admin.Username, "Administrator", models.RoleManager, admin.Password)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "✓ Created manager account: %s\n", user.Username)
		} else {
			fmt.Fprintf(out, "  User already exists: %s\n", user.Username)
		}
		return nil
	}
}

func printSeedResults(out io.Writer, kind string, results []services.SeedResult) {
	for _, r := range results {
		if r.Created {
			fmt.Fprintf(out, "✓ Created %s: %s\n", kind, r.Name)
		} else {
			fmt.Fprintf(out, "  %s already exists: %s\n", strings.ToUpper(kind[:1])+kind[1:], r.Name)
		}
	}
}

// CheckShifts lists the shifts and a sample of workers with their shift.
func CheckShifts() runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		svc := services.NewDiagnosticsService(db)

		shifts, err := svc.Shifts(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Shifts:")
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND")
		for _, s := range shifts {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.StartTime, s.EndTime)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		workers, err := svc.SampleWorkers(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nSample Workers:")
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSHIFT")
		for _, w := range workers {
			shift := w.ShiftName
			if shift == "" {
				shift = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", w.ID, w.Name, shift)
		}
		return tw.Flush()
	}
}

// CheckRegions prints the distinct region names used by each table.
func CheckRegions() runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		fmt.Fprintln(out, "--- Checking Region Inconsistencies ---")
		usage, err := services.NewDiagnosticsService(db).RegionUsage(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nDefined Regions (in 'regions' table): %s\n", quoteAll(usage.Defined))
		fmt.Fprintf(out, "\nWorker Regions: %s\n", quoteAll(usage.Workers))
		fmt.Fprintf(out, "\nUser Regions: %s\n", quoteAll(usage.Users))
		return nil
	}
}

// FixRegions rewrites known misspellings of region names.
func FixRegions(aliases map[string]string) runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		fmt.Fprintln(out, "--- Normalizing Region Names ---")
		fixes, err := services.NewSeedService(db).NormalizeRegions(ctx, aliases)
		if err != nil {
			return err
		}
		for _, f := range fixes {
			fmt.Fprintf(out, "Fixing %s %s: %q -> %q\n", strings.TrimSuffix(f.Table, "s"), f.Label, f.From, f.To)
		}
		fmt.Fprintf(out, "Region normalization complete (%d changed).\n", len(fixes))
		return nil
	}
}

// VerifySchema fails when any required column is missing.
func VerifySchema(required []services.ColumnRequirement) runner.Func {
	return func(ctx context.Context, db *gorm.DB, out io.Writer) error {
		missing, err := services.NewDiagnosticsService(db).MissingColumns(ctx, required)
		if err != nil {
			return fmt.Errorf("verify schema: %w", err)
		}
		if len(missing) > 0 {
			fmt.Fprintln(out, "[db:verify] Missing required DB schema columns:")
			for _, m := range missing {
				fmt.Fprintf(out, "- %s.%s (%s)\n", m.Table, m.Column, m.Note)
			}
			fmt.Fprintln(out, "[db:verify] Apply migrations before deploying.")
			return fmt.Errorf("%w: %d missing", ErrSchemaIncomplete, len(missing))
		}
		fmt.Fprintln(out, "[db:verify] Schema verification passed.")
		return nil
	}
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
