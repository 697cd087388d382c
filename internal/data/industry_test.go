// internal/data/industry_test.go
package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapIndustryToKey(t *testing.T) {
	tests := []struct {
		industry string
		want     string
	}{
		{"Accounting & Tax Services", "accounting"},
		{"Financial Planning", "accounting"},
		{"Tax Advisory", "accounting"},
		{"Law Firm", "legal"},
		{"Legal Services", "legal"},
		{"IT Consulting", "technology"},
		{"Marketing Agency", "technology"},
		{"Architecture Studio", "technology"},
		{"Engineering Services", "technology"},
		{"Real Estate Brokerage", "realestate"},
		{"Insurance Agency", "realestate"},
		{"Recruiting & Staffing", "recruiting"},
		{"Staffing Agency", "recruiting"},
		{"Beekeeping", "generic"},
		{"", "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			assert.Equal(t, tt.want, MapIndustryToKey(tt.industry))
		})
	}
}

func TestMapIndustryToKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t, "accounting", MapIndustryToKey("ACCOUNTING"))
	assert.Equal(t, "legal", MapIndustryToKey("law office"))
}

func TestProfileFor_OverlaysOnGenericBase(t *testing.T) {
	legal := ProfileFor("legal")
	assert.Equal(t, "legal", legal.Key)
	assert.Equal(t, "attorneys", legal.TeamNoun)
	assert.NotEmpty(t, legal.Insights)
	// fields the overlay leaves empty fall back to the generic base
	assert.Equal(t, "the whole team", legal.DigestAudience)

	// verticals without their own insights inherit the generic ones
	tech := ProfileFor("technology")
	generic := ProfileFor("generic")
	assert.Equal(t, generic.Insights, tech.Insights)

	unknown := ProfileFor("no-such-vertical")
	assert.Equal(t, "generic", unknown.Key)
}
