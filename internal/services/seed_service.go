package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nstc-app/management/internal/models"
)

// ErrInvalidWarehouse is returned when a warehouse has no name.
var ErrInvalidWarehouse = errors.New("warehouse name is required")

// DefaultWarehouses are created by the lookup seed.
var DefaultWarehouses = []models.Warehouse{
	{Name: "NSTC", Location: "Riyadh"},
	{Name: "SNC", Location: "Dammam"},
}

// DefaultRegions are created by the lookup seed.
var DefaultRegions = []string{
	"Riyadh",
	"Jeddah",
	"Dammam",
	"Neom",
	"Tabuk",
	"Jizan",
	"Madinah",
}

// DefaultProjects are created by the lookup seed with type DefaultProjectType.
var DefaultProjects = []string{
	"Royal Commission Project",
	"Neom Infrastructure",
	"Riyadh Metro Extension",
	"Red Sea Development",
	"Qiddiya Project",
	"Diriyah Gate",
	"General Maintainance",
}

// DefaultProjectType is the type given to seeded projects.
const DefaultProjectType = "Construction"

// RegionAliases maps known misspellings to the canonical region name.
var RegionAliases = map[string]string{
	"1s floor":            "1st floor",
	"1s Floor":            "1st floor",
	"1st Floor":           "1st floor",
	"Ward50-51":           "Ward 50-51",
	"Imeging":             "IMAGING",
	"Neurodiangnostic":    "Neurodiagnostic",
	"RT and Waiting area": "WA And RT",
}

// SeedResult tells whether an upsert inserted a new row.
type SeedResult struct {
	Name    string
	Created bool
}

// SeedSummary lists what a lookup seed touched, per table.
type SeedSummary struct {
	Warehouses []SeedResult
	Regions    []SeedResult
	Projects   []SeedResult
}

// RegionFix is one normalized region value.
type RegionFix struct {
	Table string
	ID    uint
	Label string
	From  string
	To    string
}

// SeedService performs idempotent inserts of reference data.
type SeedService struct {
	db *gorm.DB
}

// NewSeedService returns a SeedService using the provided DB
func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// UpsertWarehouse creates the warehouse when no row has that name. An
// existing row is returned as stored; its location is never overwritten.
func (s *SeedService) UpsertWarehouse(ctx context.Context, name, location string) (*models.Warehouse, bool, error) {
	if s.db == nil {
		return nil, false, ErrStoreUnavailable
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrInvalidWarehouse
	}

	var wh models.Warehouse
	result := s.db.WithContext(ctx).
		Where(models.Warehouse{Name: name}).
		Attrs(models.Warehouse{Location: location}).
		FirstOrCreate(&wh)
	if result.Error != nil {
		return nil, false, fmt.Errorf("upsert warehouse %s: %w", name, result.Error)
	}
	return &wh, result.RowsAffected > 0, nil
}

// UpsertRegion creates the region when absent.
func (s *SeedService) UpsertRegion(ctx context.Context, name string) (*models.Region, bool, error) {
	if s.db == nil {
		return nil, false, ErrStoreUnavailable
	}
	var region models.Region
	result := s.db.WithContext(ctx).Where(models.Region{Name: name}).FirstOrCreate(&region)
	if result.Error != nil {
		return nil, false, fmt.Errorf("upsert region %s: %w", name, result.Error)
	}
	return &region, result.RowsAffected > 0, nil
}

// UpsertProject creates the project when absent, leaving existing type and status alone.
func (s *SeedService) UpsertProject(ctx context.Context, name, projectType string) (*models.Project, bool, error) {
	if s.db == nil {
		return nil, false, ErrStoreUnavailable
	}
	var project models.Project
	result := s.db.WithContext(ctx).
		Where(models.Project{Name: name}).
		Attrs(models.Project{Type: projectType}).
		FirstOrCreate(&project)
	if result.Error != nil {
		return nil, false, fmt.Errorf("upsert project %s: %w", name, result.Error)
	}
	return &project, result.RowsAffected > 0, nil
}

// ListWarehouses returns every warehouse ordered by name.
func (s *SeedService) ListWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	var res []models.Warehouse
	if err := s.db.WithContext(ctx).Order("name asc").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

// SeedLookups upserts the default warehouses, regions and projects, stopping at the first error.
func (s *SeedService) SeedLookups(ctx context.Context) (SeedSummary, error) {
	var summary SeedSummary

	for _, wh := range DefaultWarehouses {
		_, created, err := s.UpsertWarehouse(ctx, wh.Name, wh.Location)
		if err != nil {
			return summary, err
		}
		summary.Warehouses = append(summary.Warehouses, SeedResult{Name: wh.Name, Created: created})
	}

	for _, name := range DefaultRegions {
		_, created, err := s.UpsertRegion(ctx, name)
		if err != nil {
			return summary, err
		}
		summary.Regions = append(summary.Regions, SeedResult{Name: name, Created: created})
	}

	for _, name := range DefaultProjects {
		_, created, err := s.UpsertProject(ctx, name, DefaultProjectType)
		if err != nil {
			return summary, err
		}
		summary.Projects = append(summary.Projects, SeedResult{Name: name, Created: created})
	}

	return summary, nil
}

// EnsureUser creates a user with the given role and password unless the
// username already exists. Existing users are left untouched.
func (s *SeedService) EnsureUser(ctx context.Context, username, name string, role models.UserRole, password string) (*models.User, bool, error) {
	if s.db == nil {
		return nil, false, ErrStoreUnavailable
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find user %s: %w", username, err)
	}

	user := models.User{Username: username, Name: name, Role: role}
	if err := user.SetPassword(password); err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("create user %s: %w", username, err)
	}
	return &user, true, nil
}

// NormalizeRegions rewrites misspelt region names using aliases: the single
// region of workers and every entry of a user's comma-separated region list.
// All changes are applied in one transaction.
func (s *SeedService) NormalizeRegions(ctx context.Context, aliases map[string]string) ([]RegionFix, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	var fixes []RegionFix
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workers []models.Worker
		if err := tx.Find(&workers).Error; err != nil {
			return fmt.Errorf("load workers: %w", err)
		}
		for _, w := range workers {
			canonical, ok := aliases[w.Region]
			if w.Region == "" || !ok {
				continue
			}
			if err := tx.Model(&models.Worker{}).Where("id = ?", w.ID).Update("region", canonical).Error; err != nil {
				return fmt.Errorf("update worker %d: %w", w.ID, err)
			}
			fixes = append(fixes, RegionFix{Table: "workers", ID: w.ID, Label: w.Name, From: w.Region, To: canonical})
		}

		var users []models.User
		if err := tx.Find(&users).Error; err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		for _, u := range users {
			if u.Region == "" {
				continue
			}
			fixed, changed := normalizeRegionList(u.Region, aliases)
			if !changed {
				continue
			}
			if err := tx.Model(&models.User{}).Where("id = ?", u.ID).Update("region", fixed).Error; err != nil {
				return fmt.Errorf("update user %d: %w", u.ID, err)
			}
			fixes = append(fixes, RegionFix{Table: "users", ID: u.ID, Label: u.Username, From: u.Region, To: fixed})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixes, nil
}

// normalizeRegionList trims every comma-separated entry and maps aliases.
// changed is true only when an alias matched.
func normalizeRegionList(list string, aliases map[string]string) (string, bool) {
	parts := strings.Split(list, ",")
	changed := false
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if canonical, ok := aliases[p]; ok {
			p = canonical
			changed = true
		}
		parts[i] = p
	}
	return strings.Join(parts, ","), changed
}
