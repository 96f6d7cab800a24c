package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFacilities(t *testing.T) {
	svc := NewFacilityService()

	assert.Len(t, svc.ListFacilities("", ""), 11)
	assert.Len(t, svc.ListFacilities("전체", ""), 11)
	assert.Len(t, svc.ListFacilities("병원", ""), 4)
	assert.Len(t, svc.ListFacilities("요양원", "진주시"), 1)
	assert.Empty(t, svc.ListFacilities("주간보호센터", "서울특별시"))

	hospitals := svc.ListFacilities("병원", "")
	assert.Equal(t, "1", hospitals[0].ID)
	assert.Equal(t, "4", hospitals[3].ID)
}

func TestGetFacility(t *testing.T) {
	svc := NewFacilityService()

	f, err := svc.GetFacility("10")
	require.NoError(t, err)
	assert.Equal(t, "행정복지센터", f.Category)

	_, err = svc.GetFacility("0")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestFacilityTypes(t *testing.T) {
	types := NewFacilityService().FacilityTypes()
	require.Len(t, types, 4)
	assert.Equal(t, "병원", types[0].Title)
}
