package catalog

import (
	"testing"

	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefits_UniqueIDsAndKnownCategories(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Benefits() {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.Contains(t, Categories[1:], b.Category)
		assert.NotEmpty(t, b.Savings)
	}
}

func TestBenefits_ReturnsCopy(t *testing.T) {
	list := Benefits()
	list[0].Name = "changed"

	b, ok := FindBenefit(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", b.Name)
}

func TestRecommendedBenefitsExist(t *testing.T) {
	for _, id := range RecommendedBenefitIDs {
		_, ok := FindBenefit(id)
		assert.True(t, ok, id)
	}
}

func TestFacilities_CategoriesMatchTypes(t *testing.T) {
	titles := map[string]bool{}
	for _, ft := range FacilityTypes {
		titles[ft.Title] = true
	}
	for _, f := range Facilities() {
		assert.True(t, titles[f.Category], f.Category)
	}

	_, ok := FindFacility("99")
	assert.False(t, ok)
}

func TestCategories_StartWithAll(t *testing.T) {
	assert.Equal(t, model.AllCategories, Categories[0])
}
