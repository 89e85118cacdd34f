package finder

// Bucket is a named numeric range offered as a discrete filter option.
type Bucket struct {
	Label   string
	Display string
	match   func(float64) bool
}

// Matches reports whether v falls inside the bucket.
func (b Bucket) Matches(v float64) bool {
	return b.match != nil && b.match(v)
}

// ExperienceBuckets are the years-of-experience options, in display order.
var ExperienceBuckets = []Bucket{
	{Label: "0-2", Display: "0-2 years", match: func(y float64) bool { return y <= 2 }},
	{Label: "3-5", Display: "3-5 years", match: func(y float64) bool { return y >= 3 && y <= 5 }},
	{Label: "6-10", Display: "6-10 years", match: func(y float64) bool { return y >= 6 && y <= 10 }},
	{Label: "10+", Display: "10+ years", match: func(y float64) bool { return y > 10 }},
}

// PriceBuckets are ranges over the rounded monthly rate, in display order.
var PriceBuckets = []Bucket{
	{Label: "0-1000", Display: "₹0 - ₹1,000/month", match: func(m float64) bool { return m <= 1000 }},
	{Label: "1000-2500", Display: "₹1,000 - ₹2,500/month", match: func(m float64) bool { return m > 1000 && m <= 2500 }},
	{Label: "2500-5000", Display: "₹2,500 - ₹5,000/month", match: func(m float64) bool { return m > 2500 && m <= 5000 }},
	{Label: "5000+", Display: "₹5,000+/month", match: func(m float64) bool { return m > 5000 }},
}

// ExperienceBucket looks up an experience bucket by label.
func ExperienceBucket(label string) (Bucket, bool) {
	return lookup(ExperienceBuckets, label)
}

// PriceBucket looks up a price bucket by label.
func PriceBucket(label string) (Bucket, bool) {
	return lookup(PriceBuckets, label)
}

func lookup(buckets []Bucket, label string) (Bucket, bool) {
	for _, b := range buckets {
		if b.Label == label {
			return b, true
		}
	}
	return Bucket{}, false
}
