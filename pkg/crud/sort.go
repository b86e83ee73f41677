package crud

import (
	"reflect"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
)

// compareValues imposes a total order across mixed and missing values:
// empty/nil sorts first, then booleans, then numbers, then strings under
// locale collation. The previous UI fell back to "equal" for mixed types,
// which made the order depend on the sort algorithm.
func compareValues(col *collate.Collator, a, b any) int {
	ra, rb := rankOf(a), rankOf(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case rankEmpty:
		return 0
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case rankNumber:
		return numberOf(a).Cmp(numberOf(b))
	default:
		return col.CompareString(valueString(a), valueString(b))
	}
}

const (
	rankEmpty = iota
	rankBool
	rankNumber
	rankString
)

func rankOf(v any) int {
	if v == nil {
		return rankEmpty
	}
	switch t := v.(type) {
	case bool:
		return rankBool
	case string:
		if t == "" {
			return rankEmpty
		}
		return rankString
	case decimal.Decimal:
		return rankNumber
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rankNumber
	default:
		if rv.IsZero() {
			return rankEmpty
		}
		return rankString
	}
}

func numberOf(v any) decimal.Decimal {
	switch t := v.(type) {
	case decimal.Decimal:
		return t
	case float32:
		return decimal.NewFromFloat32(t)
	case float64:
		return decimal.NewFromFloat(t)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(rv.Uint())
	default:
		return decimal.Zero
	}
}
