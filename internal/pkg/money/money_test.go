package money_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
	"github.com/WazzyDev/PushinPaybot/internal/pkg/money"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		cents int64
	}{
		{name: "comma separator", raw: "10,50", cents: 1050},
		{name: "dot separator", raw: "7.00", cents: 700},
		{name: "surrounding whitespace", raw: " 3,5 ", cents: 350},
		{name: "plan price", raw: "19,90", cents: 1990},
		{name: "integer", raw: "25", cents: 2500},
		{name: "zero", raw: "0", cents: 0},
		{name: "sub cent rounding", raw: "1,005", cents: 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := money.ParsePrice(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.cents, cents)
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "10,50,00", "-1,00"} {
		t.Run(raw, func(t *testing.T) {
			_, err := money.ParsePrice(raw)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrInvalidPrice))
		})
	}
}
