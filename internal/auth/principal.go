// Package auth holds the role-tagged principal and its capability
// predicates. Services query capabilities only; the concrete role vocabulary
// is private to this package so the capability model stays swappable.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	roleAdmin           = "admin"
	roleEboard          = "eboard"
	roleMember          = "member"
	roleRecruitmentTeam = "recruitmentteam"
)

// AdministratorRoles returns the roles whose holders pass CanAdministrate.
// Background workers use it to resolve administrator recipients without
// learning the role vocabulary itself.
func AdministratorRoles() []string {
	return []string{roleEboard, roleAdmin}
}

// Principal is the identity attached to a request. A nil Principal is a
// guest (an interviewee joining a room by id has no principal).
type Principal struct {
	UserID string
	Email  string
	Roles  map[string]bool
}

func (p *Principal) hasAny(roles ...string) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Roles[r] {
			return true
		}
	}
	return false
}

// CanInterview reports whether the principal may act as the interviewer
// side of a room (drive navigation, save notes, close).
func (p *Principal) CanInterview() bool {
	return p.hasAny(roleMember, roleRecruitmentTeam, roleEboard, roleAdmin)
}

// CanVote reports whether the principal may view candidates and cast
// deliberation votes.
func (p *Principal) CanVote() bool {
	return p.hasAny(roleMember, roleEboard, roleAdmin)
}

// CanAdministrate reports whether the principal may write feedback, toggle
// deliberation settings, run finalization and manage static configuration.
func (p *Principal) CanAdministrate() bool {
	return p.hasAny(roleEboard, roleAdmin)
}

// FromClaims rebuilds a Principal from JWT claims issued by the auth service.
func FromClaims(claims jwt.MapClaims) *Principal {
	p := &Principal{Roles: make(map[string]bool)}

	if sub, ok := claims["user_id"].(string); ok {
		p.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	if raw, ok := claims["roles"].(map[string]interface{}); ok {
		for role, v := range raw {
			if enabled, ok := v.(bool); ok && enabled {
				p.Roles[role] = true
			}
		}
	}

	return p
}

// Claims flattens the principal back into JWT claims.
func (p *Principal) Claims() jwt.MapClaims {
	roles := make(map[string]interface{}, len(p.Roles))
	for role, enabled := range p.Roles {
		roles[role] = enabled
	}
	return jwt.MapClaims{
		"user_id": p.UserID,
		"email":   p.Email,
		"roles":   roles,
	}
}
