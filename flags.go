package trigpt

import (
	"fmt"
	"strconv"
)

// FloatArrayFlags collects repeated float flag values, replacing any default
// contents on first use. Useful for cut ranges and trigger thresholds given
// on the command line.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *FloatArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}

// Range interprets the collected values as an inclusive range. It requires
// exactly two values in ascending order.
func (f *FloatArrayFlags) Range() (*CutRange, error) {
	if len(f.Array) != 2 || f.Array[0] > f.Array[1] {
		return nil, fmt.Errorf("expected two ascending values, got %v", f.Array)
	}
	return NewCutRange(f.Array[0], f.Array[1]), nil
}
