package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTax_Validation(t *testing.T) {
	_, err := NewTax("", 6, RateTypePercentage, false, AppliesAll)
	assert.Error(t, err)

	_, err = NewTax("SST", -1, RateTypePercentage, false, AppliesAll)
	assert.Error(t, err)

	_, err = NewTax("SST", 6, RateType("tiered"), false, AppliesAll)
	assert.Error(t, err)

	_, err = NewTax("SST", 6, RateTypePercentage, false, Applicability("boats"))
	assert.Error(t, err)
}

func TestTax_AppliesTo(t *testing.T) {
	sst, err := NewTax("SST", 6, RateTypePercentage, false, AppliesAll)
	require.NoError(t, err)
	assert.True(t, sst.AppliesTo(AppliesApartment))
	assert.True(t, sst.AppliesTo(AppliesAirportTaxi))

	cityTax, err := NewTax("City tax", 5, RateTypeFixed, true, AppliesApartment)
	require.NoError(t, err)
	assert.True(t, cityTax.AppliesTo(AppliesApartment))
	assert.False(t, cityTax.AppliesTo(AppliesAttraction))
}

func TestTax_UpdatePartial(t *testing.T) {
	tx, err := NewTax("SST", 6, RateTypePercentage, false, AppliesAll)
	require.NoError(t, err)

	perHead := true
	tx.Update("", 8, RateType(""), &perHead, Applicability(""))

	assert.Equal(t, "SST", tx.Name())
	assert.Equal(t, 8.0, tx.Rate())
	assert.Equal(t, RateTypePercentage, tx.RateType())
	assert.True(t, tx.PerHead())
	assert.Equal(t, AppliesAll, tx.Applicability())
}
