package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		total Amount
		n     int
		want  []Amount
	}{
		{name: "even", total: 120000, n: 3, want: []Amount{40000, 40000, 40000}},
		{name: "remainder goes to first", total: 1000, n: 3, want: []Amount{334, 333, 333}},
		{name: "single slice", total: 999, n: 1, want: []Amount{999}},
		{name: "more slices than units", total: 2, n: 5, want: []Amount{2, 0, 0, 0, 0}},
		{name: "zero total", total: 0, n: 4, want: []Amount{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.total, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_InvalidCount(t *testing.T) {
	_, err := Split(100, 0)
	assert.Error(t, err)
	_, err = Split(100, -2)
	assert.Error(t, err)
}

func TestSplit_Conservation(t *testing.T) {
	totals := []Amount{1, 7, 99, 100, 101, 1234567, 999999999, -17}
	for _, total := range totals {
		for n := 1; n <= 37; n++ {
			parts, err := Split(total, n)
			require.NoError(t, err)
			require.Len(t, parts, n)
			if got := Sum(parts...); got != total {
				t.Fatalf("Split(%d, %d) sums to %d", total, n, got)
			}
		}
	}
}

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		in       string
		currency string
		want     Amount
		format   string
		wantErr  bool
	}{
		{in: "12.34", currency: "USD", want: 1234, format: "12.34"},
		{in: "12.3", currency: "EUR", want: 1230, format: "12.30"},
		{in: "1200", currency: "USD", want: 120000, format: "1200.00"},
		{in: " 5 ", currency: "USD", want: 500, format: "5.00"},
		{in: "-3.50", currency: "USD", want: -350, format: "-3.50"},
		{in: "1500", currency: "JPY", want: 1500, format: "1500"},
		{in: "1.234", currency: "KWD", want: 1234, format: "1.234"},
		{in: "12.345", currency: "USD", wantErr: true},
		{in: "1.5", currency: "JPY", wantErr: true},
		{in: "abc", currency: "USD", wantErr: true},
		{in: "", currency: "USD", wantErr: true},
		{in: "99999999999999999999", currency: "USD", wantErr: true},
		{in: "10000000000000", currency: "USD", want: MaxAmount, format: "10000000000000.00"},
		{in: "10000000000000.01", currency: "USD", wantErr: true},
		{in: "92233720368547758.07", currency: "USD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in+"/"+tt.currency, func(t *testing.T) {
			got, err := Parse(tt.in, tt.currency)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.format, got.Format(tt.currency))
		})
	}
}

func TestCheckRange(t *testing.T) {
	assert.NoError(t, CheckRange(MaxAmount))
	assert.NoError(t, CheckRange(-MaxAmount))
	assert.Error(t, CheckRange(MaxAmount+1))
	assert.Error(t, CheckRange(-MaxAmount-1))
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("USD"))
	assert.NoError(t, ValidateCurrency("BRL"))
	assert.Error(t, ValidateCurrency("usd"))
	assert.Error(t, ValidateCurrency("US"))
	assert.Error(t, ValidateCurrency("US1"))
	assert.Error(t, ValidateCurrency(""))
}

func TestScheduleDueDates_Monthly(t *testing.T) {
	anchor := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := ScheduleDueDates(anchor, 4, Monthly)

	want := []time.Time{
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, got)
}

func TestScheduleDueDates_YearRollover(t *testing.T) {
	anchor := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	got := ScheduleDueDates(anchor, 3, Monthly)

	assert.Equal(t, time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), got[1])
	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), got[2])
}

func TestScheduleDueDates_Weekly(t *testing.T) {
	anchor := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	weekly := ScheduleDueDates(anchor, 3, Weekly)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), weekly[2])

	biweekly := ScheduleDueDates(anchor, 2, Biweekly)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), biweekly[1])
}

func TestScheduleDueDates_Empty(t *testing.T) {
	assert.Nil(t, ScheduleDueDates(time.Now(), 0, Monthly))
}

func TestParseCadence(t *testing.T) {
	c, err := ParseCadence("")
	require.NoError(t, err)
	assert.Equal(t, Monthly, c)

	c, err = ParseCadence("weekly")
	require.NoError(t, err)
	assert.Equal(t, Weekly, c)

	_, err = ParseCadence("daily")
	assert.Error(t, err)
}
