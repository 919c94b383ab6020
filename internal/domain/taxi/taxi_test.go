package taxi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarType_BaseFareCents(t *testing.T) {
	assert.Equal(t, int64(10000), CarTypeStandardSedan.BaseFareCents())
	assert.Equal(t, int64(15000), CarTypePremiumSedan.BaseFareCents())
	assert.Equal(t, int64(20000), CarTypeSUV.BaseFareCents())
	assert.Equal(t, int64(25000), CarTypeMiniBus.BaseFareCents())
}

func TestNewTaxi_DefaultsPriceToBaseFare(t *testing.T) {
	taxi, err := NewTaxi("Airport SUV 1", CarTypeSUV, 6, 4, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), taxi.PriceCents())
	assert.Equal(t, StatusActive, taxi.Status())
}

func TestNewTaxi_Validation(t *testing.T) {
	_, err := NewTaxi("", CarTypeSUV, 6, 4, 2, 0)
	assert.Error(t, err)

	_, err = NewTaxi("Car", CarType("limo"), 6, 4, 2, 0)
	assert.Error(t, err)

	_, err = NewTaxi("Car", CarTypeSUV, 0, 4, 2, 0)
	assert.Error(t, err)
}

func validRider() Rider {
	return Rider{
		FirstName: "Noor",
		LastName:  "Aziz",
		Phone:     "+60129998888",
		Email:     "noor@example.com",
	}
}

func TestNewBooking_PricesFromCarType(t *testing.T) {
	bk, err := NewBooking("KLIA Terminal 1", "City Hotel", "MH370", "Malaysia Airlines",
		"2025-09-01", "14:30", BookingTypePickup, validRider(), "2 large", "", CarTypePremiumSedan)
	require.NoError(t, err)

	assert.Equal(t, int64(15000), bk.PriceCents())
	assert.Equal(t, BookingStatusPending, bk.Status())
}

func TestNewBooking_Validation(t *testing.T) {
	_, err := NewBooking("", "City Hotel", "", "", "2025-09-01", "14:30",
		BookingTypePickup, validRider(), "", "", CarTypeSUV)
	assert.Error(t, err)

	_, err = NewBooking("KLIA", "Hotel", "", "", "2025-09-01", "14:30",
		BookingType("roundtrip"), validRider(), "", "", CarTypeSUV)
	assert.Error(t, err)

	_, err = NewBooking("KLIA", "Hotel", "", "", "01-09-2025", "14:30",
		BookingTypePickup, validRider(), "", "", CarTypeSUV)
	assert.Error(t, err)

	_, err = NewBooking("KLIA", "Hotel", "", "", "2025-09-01", "14:30",
		BookingTypePickup, Rider{}, "", "", CarTypeSUV)
	assert.Error(t, err)
}

func TestTaxiBooking_Transitions(t *testing.T) {
	bk, err := NewBooking("KLIA Terminal 1", "City Hotel", "", "",
		"2025-09-01", "14:30", BookingTypeDropoff, validRider(), "", "", CarTypeStandardSedan)
	require.NoError(t, err)

	require.NoError(t, bk.Complete())
	assert.Equal(t, BookingStatusCompleted, bk.Status())

	// completed is terminal.
	assert.Error(t, bk.Cancel())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusPending, status)

	_, err = ParseBookingStatus("confirmed")
	assert.Error(t, err)
}
