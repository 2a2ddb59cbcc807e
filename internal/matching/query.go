package matching

import "strings"

// MaxRolesPerSync caps how many profile roles drive upstream searches per
// run, bounding provider call volume and noise.
const MaxRolesPerSync = 3

// SelectRoles returns the first MaxRolesPerSync non-empty, trimmed roles in
// original order.
func SelectRoles(roles []string) []string {
	selected := make([]string, 0, MaxRolesPerSync)
	for _, role := range roles {
		trimmed := strings.TrimSpace(role)
		if trimmed == "" {
			continue
		}
		selected = append(selected, trimmed)
		if len(selected) == MaxRolesPerSync {
			break
		}
	}
	return selected
}

// BuildQuery composes one upstream search query string for a role. A remote
// intent containing "remote" (case-insensitive) is treated as wanting remote
// work; the location preference, when present, scopes the search.
func BuildQuery(role, locationPreference, remoteIntent string) string {
	role = strings.TrimSpace(role)
	location := strings.TrimSpace(locationPreference)
	wantsRemote := strings.Contains(strings.ToLower(remoteIntent), "remote")

	switch {
	case wantsRemote && location != "":
		return role + " remote in " + location
	case wantsRemote:
		return role + " remote"
	case location != "":
		return role + " in " + location
	default:
		return role
	}
}
