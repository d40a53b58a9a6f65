package services

import (
	"testing"

	"raydan-backend-go/internal/i18n"
)

func TestMembershipTiersLocalized(t *testing.T) {
	arabic := MembershipTiers(i18n.LangAR)
	english := MembershipTiers(i18n.LangEN)
	if len(arabic) != 3 || len(english) != 3 {
		t.Fatalf("tier counts: ar=%d en=%d", len(arabic), len(english))
	}
	if arabic[0].Value != TierIndividual || arabic[0].Name != "عضوية فردية" {
		t.Fatalf("arabic individual tier = %+v", arabic[0])
	}
	if english[2].Value != TierFounding || english[2].Name != "Founding Partner" {
		t.Fatalf("english founding tier = %+v", english[2])
	}
}

func TestValidTier(t *testing.T) {
	for _, tier := range []string{TierIndividual, TierInstitutional, TierFounding} {
		if !ValidTier(tier) {
			t.Fatalf("%s must be valid", tier)
		}
	}
	if ValidTier("platinum") {
		t.Fatalf("unknown tier accepted")
	}
}

func TestCanTriage(t *testing.T) {
	if !CanTriage(StatusPending) {
		t.Fatalf("pending must be triageable")
	}
	if CanTriage(StatusApproved) || CanTriage(StatusRejected) {
		t.Fatalf("decided statuses are terminal")
	}
}
