package bucket

// Bucket is one half-open duration range in seconds. Hi is nil for the
// open-ended top range.
type Bucket struct {
	Label string
	Lo    float64
	Hi    *float64
}

// Set is an ordered, contiguous list of buckets covering [0, inf).
type Set []Bucket

func upper(v float64) *float64 { return &v }

// Default returns the fixed duration buckets used to stratify clips by
// length. A fresh slice is returned so callers cannot mutate shared state.
func Default() Set {
	return Set{
		{Label: "[0, 1)", Lo: 0, Hi: upper(1)},
		{Label: "[1, 5)", Lo: 1, Hi: upper(5)},
		{Label: "[5, 10)", Lo: 5, Hi: upper(10)},
		{Label: "[10, 15)", Lo: 10, Hi: upper(15)},
		{Label: "[15, 20)", Lo: 15, Hi: upper(20)},
		{Label: "[20, 25)", Lo: 20, Hi: upper(25)},
		{Label: "[25, 30)", Lo: 25, Hi: upper(30)},
		{Label: "[30+)", Lo: 30, Hi: nil},
	}
}

// Labels returns the bucket labels in range order.
func (s Set) Labels() []string {
	labels := make([]string, len(s))
	for i, b := range s {
		labels[i] = b.Label
	}
	return labels
}

// Assign returns the label of the bucket containing d. Ranges are
// checked in ascending order, lower bound inclusive, upper bound
// exclusive. ok is false only when no range matches (negative input).
func (s Set) Assign(d float64) (label string, ok bool) {
	for _, b := range s {
		if d < b.Lo {
			continue
		}
		if b.Hi == nil || d < *b.Hi {
			return b.Label, true
		}
	}
	return "", false
}
