package models

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12.34", want: 1234},
		{in: "12,34", want: 1234},
		{in: "12,346", want: 1235},
		{in: "12.344", want: 1234},
		{in: "0", want: 0},
		{in: "7", want: 700},
		{in: "7.5", want: 750},
		{in: ".5", want: 50},
		{in: " 100.00 ", want: 10000},
		{in: "", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "+5", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "12a", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
		{in: "1.٣", wantErr: true},
		{in: "٣.50", wantErr: true},
		{in: "１２", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidAmount))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents)
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "1234.50", Cents(123450).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-1.50", Cents(-150).String())
	assert.True(t, Cents(1).IsPositive())
	assert.False(t, Cents(0).IsPositive())
	assert.True(t, Cents(-1).IsNegative())
	assert.Equal(t, Cents(300), Cents(100).Add(Cents(200)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.May, 10), d)
	assert.Equal(t, "2024-05-10", d.String())

	_, err = ParseDate("10/05/2024")
	assert.Error(t, err)
	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)

	opt, err := ParseOptionalDate("  ")
	require.NoError(t, err)
	assert.True(t, opt.IsZero())
	assert.Equal(t, "", opt.String())
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	d := DateOf(time.Date(2024, 6, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, NewDate(2024, 6, 1), d)
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDateOrdering(t *testing.T) {
	a, b := NewDate(2024, 1, 1), NewDate(2024, 1, 2)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestNewCampaignKey(t *testing.T) {
	k, err := NewCampaignKey(" Parks ", "Burnaby", "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, CampaignKey{Issue: "Parks", Location: "Burnaby", StartDate: NewDate(2024, 5, 10)}, k)
	assert.Equal(t, "Parks/Burnaby/2024-05-10", k.String())

	_, err = NewCampaignKey("", "Burnaby", "2024-05-10")
	assert.EqualError(t, err, "campaign issue is required")
	_, err = NewCampaignKey("Parks", "Burnaby", "soon")
	assert.Error(t, err)
}

func TestCampaignKeyLess(t *testing.T) {
	base := CampaignKey{Issue: "Parks", Location: "Burnaby", StartDate: NewDate(2024, 5, 10)}
	later := base
	later.StartDate = NewDate(2025, 5, 10)
	other := base
	other.Location = "Coquitlam"

	assert.True(t, base.Less(later))
	assert.True(t, base.Less(other))
	assert.True(t, CampaignKey{Issue: "Housing"}.Less(base))
	assert.False(t, base.Less(base))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Volunteer ")
	require.NoError(t, err)
	assert.Equal(t, RoleVolunteer, r)

	_, err = ParseRole("donor")
	assert.Error(t, err)
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(fmt.Errorf("%w: x", ErrUnknownCampaign)))
	assert.False(t, IsDomainError(fmt.Errorf("%w: x", ErrStoreUnavailable)))
	assert.False(t, IsDomainError(errors.New("boom")))
}
