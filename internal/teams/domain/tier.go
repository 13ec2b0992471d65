package domain

import "fmt"

// Tier is a subscription plan. The tier table is static reference data; it is
// not mutable through this service.
type Tier string

const (
	TierFree       Tier = "free"
	TierBasic      Tier = "basic"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// TierInfo describes the plan attached to a tier. MaxMembers == 0 means the
// tier places no bound on membership count.
type TierInfo struct {
	Tier       Tier
	Name       string
	MaxMembers int
	Features   []string
}

// tierTable is ordered cheapest first; ListTiers returns it in this order.
var tierTable = []TierInfo{
	{
		Tier:       TierFree,
		Name:       "Free",
		MaxMembers: 3,
		Features:   []string{"teams", "invitations"},
	},
	{
		Tier:       TierBasic,
		Name:       "Basic",
		MaxMembers: 10,
		Features:   []string{"teams", "invitations", "custom-logo"},
	},
	{
		Tier:       TierPro,
		Name:       "Pro",
		MaxMembers: 25,
		Features:   []string{"teams", "invitations", "custom-logo", "audit-log", "priority-support"},
	},
	{
		Tier:       TierEnterprise,
		Name:       "Enterprise",
		MaxMembers: 0,
		Features:   []string{"teams", "invitations", "custom-logo", "audit-log", "priority-support", "sso", "sla"},
	},
}

func (t Tier) Valid() bool {
	_, err := TierInfoFor(t)
	return err == nil
}

func (t Tier) String() string { return string(t) }

// TierInfoFor returns the plan details for a tier.
func TierInfoFor(t Tier) (TierInfo, error) {
	for _, info := range tierTable {
		if info.Tier == t {
			return info, nil
		}
	}
	return TierInfo{}, fmt.Errorf("unknown tier %q", t)
}

// ParseTier validates a caller-supplied tier string.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", s)
	}
	return t, nil
}

// ListTiers returns the full tier table, cheapest first. Callers must not
// mutate the returned slices.
func ListTiers() []TierInfo {
	return tierTable
}
