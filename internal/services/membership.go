package services

import (
	"raydan-backend-go/internal/i18n"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TierIndividual    = "individual"
	TierInstitutional = "institutional"
	TierFounding      = "founding"
)

type MembershipTier struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

var tierNames = []struct {
	value string
	ar    string
	en    string
}{
	{TierIndividual, "عضوية فردية", "Individual Member"},
	{TierInstitutional, "عضوية مؤسسية", "Institutional Member"},
	{TierFounding, "شريك مؤسس", "Founding Partner"},
}

func MembershipTiers(lang i18n.Lang) []MembershipTier {
	tiers := make([]MembershipTier, 0, len(tierNames))
	for _, tier := range tierNames {
		tiers = append(tiers, MembershipTier{
			Value: tier.value,
			Name:  i18n.Pick(lang, tier.ar, tier.en),
		})
	}
	return tiers
}

func ValidTier(value string) bool {
	for _, tier := range tierNames {
		if tier.value == value {
			return true
		}
	}
	return false
}

// CanTriage reports whether an application can still be approved or
// rejected. Approved and rejected are terminal; there is no way back.
func CanTriage(status string) bool {
	return status == StatusPending
}
