package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"gatepass/internal/model"
	"gatepass/internal/plate"
	"gatepass/internal/repository"
)

// Fixture is the YAML seed file.
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

// FixtureUser is a user together with the vehicles and passes it owns.
type FixtureUser struct {
	Name       string           `yaml:"name"`
	Phone      string           `yaml:"phone"`
	FlatNumber string           `yaml:"flat_number"`
	Password   string           `yaml:"password"`
	Role       model.Role       `yaml:"role"`
	Vehicles   []FixtureVehicle `yaml:"vehicles"`
	Passes     []FixturePass    `yaml:"passes"`
}

type FixtureVehicle struct {
	Plate  string              `yaml:"plate"`
	Name   string              `yaml:"name"`
	Status model.VehicleStatus `yaml:"status"`
}

// FixturePass opens at seed time (plus StartsIn) and stays valid for ValidFor.
type FixturePass struct {
	VisitorName string        `yaml:"visitor_name"`
	Plate       string        `yaml:"plate"`
	StartsIn    time.Duration `yaml:"starts_in"`
	ValidFor    time.Duration `yaml:"valid_for"`
}

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(raw)
}

// ParseFixture decodes YAML and fills defaults.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	for i := range f.Users {
		u := &f.Users[i]
		if u.Phone == "" || u.Password == "" {
			return nil, fmt.Errorf("user %d: phone and password are required", i)
		}
		if u.Role == "" {
			u.Role = model.RoleResident
		}
		if u.Role != model.RoleResident && u.Role != model.RoleAdmin {
			return nil, fmt.Errorf("user %s: unknown role %q", u.Phone, u.Role)
		}
		for j := range u.Vehicles {
			v := &u.Vehicles[j]
			v.Plate = plate.Normalize(v.Plate)
			if !plate.Valid(v.Plate) {
				return nil, fmt.Errorf("user %s: vehicle %d has an empty plate", u.Phone, j)
			}
			if v.Status == "" {
				v.Status = model.VehicleStatusPending
			}
			if !v.Status.Valid() {
				return nil, fmt.Errorf("vehicle %s: unknown status %q", v.Plate, v.Status)
			}
		}
		for j := range u.Passes {
			p := &u.Passes[j]
			p.Plate = plate.Normalize(p.Plate)
			if !plate.Valid(p.Plate) {
				return nil, fmt.Errorf("user %s: pass %d has an empty plate", u.Phone, j)
			}
			if p.ValidFor <= 0 {
				p.ValidFor = 24 * time.Hour
			}
		}
	}
	return &f, nil
}

// Stores are the repositories the seeder writes through.
type Stores struct {
	Users    repository.UserRepository
	Vehicles repository.VehicleRepository
	Passes   repository.PassRepository
}

// Result counts inserted records.
type Result struct {
	Skipped  bool
	Users    int
	Vehicles int
	Passes   int
}

// Seed inserts f. A store that already has users is left alone unless
// force is set; with force, users whose phone exists are skipped.
func Seed(ctx context.Context, s Stores, f *Fixture, now time.Time, force bool) (Result, error) {
	var res Result

	count, err := s.Users.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count users: %w", err)
	}
	if count > 0 && !force {
		res.Skipped = true
		return res, nil
	}

	for _, fu := range f.Users {
		if _, err := s.Users.FindByPhone(ctx, fu.Phone); err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(fu.Password), bcrypt.DefaultCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", fu.Phone, err)
		}
		user := &model.User{
			Name:         fu.Name,
			Phone:        fu.Phone,
			PasswordHash: string(hash),
			Role:         fu.Role,
		}
		if fu.FlatNumber != "" {
			flat := fu.FlatNumber
			user.FlatNumber = &flat
		}
		if err := s.Users.Create(ctx, user); err != nil {
			return res, fmt.Errorf("create user %s: %w", fu.Phone, err)
		}
		res.Users++

		for _, fv := range fu.Vehicles {
			vehicle := &model.Vehicle{
				UserID:      user.ID,
				PlateNumber: fv.Plate,
				Status:      fv.Status,
			}
			if fv.Name != "" {
				name := fv.Name
				vehicle.Name = &name
			}
			if err := s.Vehicles.Create(ctx, vehicle); err != nil {
				return res, fmt.Errorf("create vehicle %s: %w", fv.Plate, err)
			}
			res.Vehicles++
		}

		for _, fp := range fu.Passes {
			from := now.Add(fp.StartsIn).UTC()
			pass := &model.TemporaryPass{
				UserID:      user.ID,
				VisitorName: fp.VisitorName,
				PlateNumber: fp.Plate,
				ValidFrom:   from,
				ValidTill:   from.Add(fp.ValidFor),
				Status:      model.PassStatusActive,
			}
			if err := s.Passes.Create(ctx, pass); err != nil {
				return res, fmt.Errorf("create pass %s: %w", fp.Plate, err)
			}
			res.Passes++
		}
	}
	return res, nil
}
