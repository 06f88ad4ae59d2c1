package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGuestHasNoCapabilities(t *testing.T) {
	var p *Principal
	assert.False(t, p.CanInterview())
	assert.False(t, p.CanVote())
	assert.False(t, p.CanAdministrate())
}

func TestCapabilityMapping(t *testing.T) {
	member := &Principal{UserID: "u1", Roles: map[string]bool{"member": true}}
	assert.True(t, member.CanInterview())
	assert.True(t, member.CanVote())
	assert.False(t, member.CanAdministrate())

	recruitment := &Principal{UserID: "u2", Roles: map[string]bool{"recruitmentteam": true}}
	assert.True(t, recruitment.CanInterview())
	assert.False(t, recruitment.CanVote())

	eboard := &Principal{UserID: "u3", Roles: map[string]bool{"eboard": true}}
	assert.True(t, eboard.CanAdministrate())
	assert.True(t, eboard.CanVote())
}

func TestClaimsRoundTrip(t *testing.T) {
	p := &Principal{
		UserID: "u1",
		Email:  "voter@example.com",
		Roles:  map[string]bool{"member": true, "eboard": true},
	}

	claims := p.Claims()
	// Simulate the map[string]interface{} shape jwt parsing produces.
	parsed := FromClaims(jwt.MapClaims{
		"user_id": claims["user_id"],
		"email":   claims["email"],
		"roles":   claims["roles"],
	})

	assert.Equal(t, p.UserID, parsed.UserID)
	assert.Equal(t, p.Email, parsed.Email)
	assert.True(t, parsed.CanAdministrate())
	assert.True(t, parsed.CanVote())
}
