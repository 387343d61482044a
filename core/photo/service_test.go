package photo

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/records"
)

var seedPhotos = []Photo{
	{ID: 1, Title: "Polluted River", Location: "Central Park, NYC", Timestamp: "2025-01-15 14:30",
		Category: "Water Pollution", XPEarned: 25, Verified: true},
	{ID: 2, Title: "Recycling Initiative", Location: "School Campus", Timestamp: "2025-01-14 10:15",
		Category: "Waste Management", XPEarned: 30, Verified: true},
	{ID: 3, Title: "Tree Planting", Location: "Community Garden", Timestamp: "2025-01-13 16:45",
		Category: "Reforestation", XPEarned: 35, Verified: false},
}

func setup(intN func(int) int, seed ...Photo) *Service {
	now := time.Date(2025, 1, 22, 9, 5, 30, 0, time.UTC)
	return NewService(records.Deps{Now: func() time.Time { return now }, IntN: intN}, seed...)
}

func TestService_Capture_defaults(t *testing.T) {
	var calls []int
	svc := setup(func(n int) int {
		calls = append(calls, n)
		return 2
	}, seedPhotos...)

	p, err := svc.Capture(Capture{})
	require.NoError(t, err)
	assert.Equal(t, Photo{
		ID:        4,
		Title:     "New Environmental Photo",
		Location:  "Current Location",
		Timestamp: "2025-01-22 09:05",
		Category:  "Soil Health",
		XPEarned:  17,
		Verified:  false,
	}, p)
	assert.Equal(t, []int{len(Categories), 20}, calls)

	photos := svc.List()
	require.Len(t, photos, 4)
	assert.Equal(t, p, photos[0], "captures are prepended")
}

func TestService_Capture_xpRange(t *testing.T) {
	lo := setup(func(int) int { return 0 })
	p, err := lo.Capture(Capture{Category: "Air Quality"})
	require.NoError(t, err)
	assert.Equal(t, 15, p.XPEarned)

	hi := setup(func(n int) int { return n - 1 })
	p, err = hi.Capture(Capture{Category: "Air Quality"})
	require.NoError(t, err)
	assert.Equal(t, 34, p.XPEarned)
}

func TestService_Capture_explicit(t *testing.T) {
	svc := setup(nil, seedPhotos...)

	p, err := svc.Capture(Capture{Title: " Smog ", Location: "Downtown", Category: "Air Quality"})
	require.NoError(t, err)
	assert.Equal(t, "Smog", p.Title)
	assert.Equal(t, "Downtown", p.Location)
	assert.Equal(t, "Air Quality", p.Category)
	assert.GreaterOrEqual(t, p.XPEarned, 15)
	assert.Less(t, p.XPEarned, 35)
}

func TestService_Capture_unknownCategory(t *testing.T) {
	translator := core.NewTranslator()
	validate := core.NewValidator(translator)
	InitValidators(validate, translator)
	svc := NewService(records.Deps{Validate: validate}, seedPhotos...)

	_, err := svc.Capture(Capture{Category: "Volcanoes"})
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "category", vErrs[0].Field())
	assert.Equal(t, "unknown photo category", vErrs[0].Translate(translator))
	assert.Len(t, svc.List(), 3)
}

func TestService_Stats(t *testing.T) {
	svc := setup(func(int) int { return 0 }, seedPhotos...)
	assert.Equal(t, Stats{Total: 3, TotalXP: 90, UniqueLocations: 3}, svc.Stats())

	_, err := svc.Capture(Capture{Location: "School Campus"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 4, TotalXP: 105, UniqueLocations: 3}, svc.Stats(), "same location counted once")

	_, err = svc.Capture(Capture{Location: "school campus"})
	require.NoError(t, err)
	assert.Equal(t, 4, svc.Stats().UniqueLocations, "exact string equality")
}
