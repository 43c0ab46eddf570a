// Package permissions maps route patterns to the capabilities they require.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"hms/shared/role"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the capabilities of which a caller needs at least one.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Unknown returns capability names no role can hold.
func (r *PermissionData) Unknown() []string {
	known := map[role.Capability]bool{}

	for _, userRole := range role.All() {
		for _, capability := range userRole.Capabilities() {
			known[capability] = true
		}
	}

	var unknown []string

	for _, endpoint := range r.Endpoints {
		for _, capability := range endpoint.Permissions {
			if !known[role.Capability(capability)] && !slices.Contains(unknown, capability) {
				unknown = append(unknown, capability)
			}
		}
	}

	return unknown
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	if unknown := permissions.Unknown(); len(unknown) > 0 {
		log.Warn().Strs("capabilities", unknown).Msg("Embedded permissions reference unknown capabilities")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
