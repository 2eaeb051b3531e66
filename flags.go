package autoticks

import (
	"fmt"
	"strconv"
	"strings"
)

// A FloatList is a flag.Value collecting float64 lists. The flag may be
// repeated, and each occurrence may carry several comma-separated values.
// Values preloaded as defaults are dropped on the first explicit Set.
type FloatList struct {
	Values  []float64
	beenSet bool
}

func (f *FloatList) Set(valueStr string) error {
	fields := strings.Split(valueStr, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Values = nil
	}

	f.Values = append(f.Values, values...)
	return nil
}

func (f *FloatList) String() string {
	return fmt.Sprint(f.Values)
}
