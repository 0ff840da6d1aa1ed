package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rolemix/internal/domain"
	"github.com/alexanderramin/rolemix/internal/store"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// resolveProfileID turns a user reference into a profile ID. The reference
// may be a full ID, a unique ID prefix or a case-insensitive name. An empty
// reference means the active profile.
func resolveProfileID(app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		if p := app.Store.Active(); p != nil {
			return p.ID, nil
		}
		return "", store.ErrNoActiveProfile
	}

	profiles := app.Store.Profiles()
	for _, p := range profiles {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var byPrefix, byName []*domain.Profile
	for _, p := range profiles {
		if strings.HasPrefix(p.ID, input) {
			byPrefix = append(byPrefix, p)
		}
		if strings.EqualFold(p.Name, input) {
			byName = append(byName, p)
		}
	}
	switch {
	case len(byPrefix) == 1:
		return byPrefix[0].ID, nil
	case len(byPrefix) > 1:
		return "", fmt.Errorf("profile id %q is ambiguous (%d matches)", input, len(byPrefix))
	case len(byName) == 1:
		return byName[0].ID, nil
	case len(byName) > 1:
		return "", fmt.Errorf("several profiles are named %q; use an id instead", input)
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return "", notFoundError(fmt.Errorf("%w: %q", store.ErrProfileNotFound, input), input, names)
}

// resolveRole finds a role in p by ID, case-insensitive name, a unique name
// substring, or a unique fuzzy match.
func resolveRole(p *domain.Profile, input string) (domain.Role, error) {
	input = strings.TrimSpace(input)
	if i := p.RoleIndex(input); i >= 0 {
		return p.Roles[i], nil
	}

	names := make([]string, len(p.Roles))
	for i, r := range p.Roles {
		names[i] = r.Name
		if strings.EqualFold(r.Name, input) {
			return r, nil
		}
	}

	lower := strings.ToLower(input)
	var sub []int
	for i, n := range names {
		if strings.Contains(strings.ToLower(n), lower) {
			sub = append(sub, i)
		}
	}
	if len(sub) == 1 {
		return p.Roles[sub[0]], nil
	}

	matches := fuzzy.Find(input, names)
	if len(sub) == 0 && len(matches) == 1 {
		return p.Roles[matches[0].Index], nil
	}
	return domain.Role{}, notFoundError(fmt.Errorf("%w: %q", store.ErrRoleNotFound, input), input, names)
}

// notFoundError appends "did you mean" hints drawn from candidates.
func notFoundError(err error, input string, candidates []string) error {
	hints := suggest(input, candidates)
	if len(hints) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
}

func suggest(input string, candidates []string) []string {
	matches := fuzzy.Find(input, candidates)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, fmt.Sprintf("%q", m.Str))
	}
	return out
}
