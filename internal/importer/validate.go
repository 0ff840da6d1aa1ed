package importer

import (
	"fmt"

	"github.com/alexanderramin/rolemix/internal/catalog"
	"github.com/alexanderramin/rolemix/internal/domain"
)

// ValidateProfileSchema reports shape problems in an import. None of them
// block the import; callers surface them as warnings.
func ValidateProfileSchema(s *ProfileSchema) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("profile.name is empty"))
	}
	if len(s.Roles) != catalog.Size {
		errs = append(errs, fmt.Errorf("profile.roles: expected %d roles, got %d", catalog.Size, len(s.Roles)))
	}

	seen := make(map[string]bool, len(s.Roles))
	for i, r := range s.Roles {
		prefix := fmt.Sprintf("roles[%d]", i)
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[r.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, r.ID))
		} else if _, ok := catalog.Lookup(r.ID); !ok {
			errs = append(errs, fmt.Errorf("%s.id %q is not a known archetype", prefix, r.ID))
		}
		seen[r.ID] = true

		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is empty", prefix))
		}
		if r.Category != "" && !domain.ValidCategories[domain.RoleCategory(r.Category)] {
			errs = append(errs, fmt.Errorf("%s.category %q is not recognized", prefix, r.Category))
		}
		if r.Weight < domain.MinWeight || r.Weight > domain.MaxWeight {
			errs = append(errs, fmt.Errorf("%s.weight %v outside [%d, %d], clamped", prefix, r.Weight, domain.MinWeight, domain.MaxWeight))
		}
	}
	return errs
}
