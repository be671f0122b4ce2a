// Package seed provides the directory, role and password tables that the
// storage adapters are built from: the built-in ACME directory or a JSON
// fixture with the same shape.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/custodia-labs/onebox/internal/core/domain"
)

// Fixture is the complete data set behind a provider.
type Fixture struct {
	Employees []domain.Record        `json:"employees"`
	Roles     map[string]domain.Role `json:"roles"`
	Passwords map[string]string      `json:"passwords"`
}

// Parse decodes and validates a JSON fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a JSON fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read fixture: %w", err)
	}
	return Parse(data)
}

// Validate checks record ids and role names.
func (f *Fixture) Validate() error {
	seen := make(map[string]struct{}, len(f.Employees))
	for _, e := range f.Employees {
		if e.ID == "" {
			return errors.New("seed: fixture contains employee without id")
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("seed: duplicate employee id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	for id, role := range f.Roles {
		if !role.IsValid() {
			return fmt.Errorf("seed: user %q has unknown role %q", id, role)
		}
	}
	return nil
}

// SortedEmployees returns the employees ordered by id.
func (f *Fixture) SortedEmployees() []domain.Record {
	out := make([]domain.Record, len(f.Employees))
	copy(out, f.Employees)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ACME returns the built-in sample directory.
func ACME() *Fixture {
	const (
		market   = "3214 Market St"
		chestnut = "1900 Chestnut Ave"
	)
	emp := func(id, first, last, phone, position, dept, building, office string) domain.Record {
		return domain.Record{
			ID:         id,
			FirstName:  first,
			LastName:   last,
			Phone:      phone,
			Email:      id + "@acme.com",
			Position:   position,
			Department: dept,
			Building:   building,
			Office:     office,
		}
	}

	return &Fixture{
		Employees: []domain.Record{
			emp("jsmith", "James", "Smith", "(408) 393-3160", "Associate", "Marketing", market, "101A"),
			emp("jjohnson", "John", "Johnson", "(408) 393-3161", "Associate", "Marketing", market, "101B"),
			emp("rwilliams", "Robert", "Williams", "(408) 393-3162", "Sr Associate", "Marketing", market, "102A"),
			emp("mjones", "Michael", "Jones", "(408) 393-3163", "Contractor", "Marketing", market, "102B"),
			emp("wbrown", "William", "Brown", "(408) 393-3164", "Contractor", "Marketing", market, "103A"),
			emp("sbrown", "Susan", "Brown", "(408) 393-3165", "Sr Associate", "Marketing", market, "103B"),
			emp("rmiller", "Richard", "Miller", "(408) 393-3166", "Sr Manager", "Marketing", market, "104A"),
			emp("cwilson", "Charles", "Wilson", "(408) 393-3167", "Jr Associate", "Sales", market, "201A"),
			emp("jmoore", "Joseph", "Moore", "(408) 393-3168", "Jr Associate", "Sales", market, "201B"),
			emp("ttaylor", "Thomas", "Taylor", "(408) 393-3169", "Associate", "Sales", market, "202A"),
			emp("canderson", "Christopher", "Anderson", "(408) 393-3170", "Manager", "Sales", market, "202B"),
			emp("dthomas", "Daniel", "Thomas", "(408) 393-3171", "Sr Manager", "Sales", market, "203A"),
			emp("pjackson", "Paul", "Jackson", "(408) 393-3172", "Director", "Sales", market, "203B"),
			emp("mwhite", "Mark", "White", "(408) 393-3173", "Director", "Sales", market, "204A"),
			emp("dharris", "Donald", "Harris", "(408) 393-3174", "Associate", "Support", chestnut, "2190"),
			emp("gmartin", "George", "Martin", "(408) 393-3175", "Associate", "Support", chestnut, "2190"),
			emp("kthompson", "Kenneth", "Thompson", "(408) 393-3176", "Sr Associate", "Support", chestnut, "2190"),
			emp("sgarcia", "Steven", "Garcia", "(408) 393-3177", "Sr Associate", "Support", chestnut, "2190"),
			emp("emartinez", "Edward", "Martinez", "(408) 393-3178", "Manager", "Support", chestnut, "2192"),
			emp("brobinson", "Brian", "Robinson", "(408) 393-3179", "Manager", "Support", chestnut, "2192"),
			emp("rbrown", "Ronald", "Brown", "(408) 393-3180", "Manager", "Support", chestnut, "2192"),
			emp("arodriguez", "Anthony", "Rodriguez", "(408) 393-3181", "Sr Manager", "Support", chestnut, "2192"),
			emp("klewis", "Kevin", "Lewis", "(408) 393-3182", "Sr Director", "Engineering", chestnut, "3011"),
			emp("jlee", "Jason", "Lee", "(408) 393-3183", "Sr Developer", "Engineering", chestnut, "3012"),
			emp("jwalker", "Jeff", "Walker", "(408) 393-3184", "Developer", "Engineering", chestnut, "3013"),
			emp("jhall", "Jennifer", "Hall", "(408) 393-3185", "Sr Developer", "Engineering", chestnut, "3022"),
			emp("mallen", "Maria", "Allen", "(408) 393-3186", "Manager", "Engineering", chestnut, "3023"),
			emp("dyoung", "David", "Young", "(408) 393-3187", "Tech Lead", "Engineering", chestnut, "3026"),
			emp("mhernandez", "Margaret", "Hernandez", "(408) 393-3188", "Systems Admin", "Operations", chestnut, "3030"),
			emp("dking", "Dorothy", "King", "(408) 393-3189", "Systems Admin", "Operations", "1900 Chestnut", "3037"),
		},
		Roles: map[string]domain.Role{
			"wbrown":     domain.RoleContractor,
			"jsmith":     domain.RoleEmployee,
			"sbrown":     domain.RoleEmployee,
			"rmiller":    domain.RoleManager,
			"mhernandez": domain.RoleAdmin,
		},
		// The sample accounts use their user id as password.
		Passwords: map[string]string{
			"wbrown":     "wbrown",
			"jsmith":     "jsmith",
			"sbrown":     "sbrown",
			"rmiller":    "rmiller",
			"mhernandez": "mhernandez",
		},
	}
}
