package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/WazzyDev/PushinPaybot/internal/domain"
)

// ParsePrice преобразует цену вида "19,90" или "7.00" в целые сентаво.
// Принимает обе десятичные запятые и пробелы по краям. Цены приходят из
// конфигурации оператора, поэтому округление половины вверх достаточно.
func ParsePrice(raw string) (int64, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if normalized == "" {
		return 0, fmt.Errorf("%w: empty price", domain.ErrInvalidPrice)
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, raw)
	}

	if value.IsNegative() {
		return 0, fmt.Errorf("%w: negative price %q", domain.ErrInvalidPrice, raw)
	}

	return value.Shift(2).Round(0).IntPart(), nil
}
