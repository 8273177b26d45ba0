package item

// ProgressSentinel is the legacy score for goals whose progress cannot
// be quantified. It is reserved: the sorting engine never promotes a
// goal scoring it, so non-quantifiable goals sink toward the end.
const ProgressSentinel = -1.0

// Progress models goal progress as an explicit optional rather than a
// magic number inside the [0,1] fraction domain. The stored fraction is
// kept verbatim even for the non-quantifiable case, because the detail
// view renders whatever value the goal was constructed with.
type Progress struct {
	fraction   float64
	quantified bool
}

// QuantifiedProgress wraps a measurable fraction. Values outside [0,1]
// are stored as given, not clamped.
func QuantifiedProgress(fraction float64) Progress {
	return Progress{fraction: fraction, quantified: true}
}

// UnquantifiedProgress records a fraction that is ignored for scoring.
func UnquantifiedProgress(stored float64) Progress {
	return Progress{fraction: stored, quantified: false}
}

// Quantified reports whether the progress is a real measurement.
func (p Progress) Quantified() bool { return p.quantified }

// Fraction returns the stored value regardless of quantifiability.
func (p Progress) Fraction() float64 { return p.fraction }

// Score returns the value used for ordering: the fraction when
// quantified, ProgressSentinel otherwise.
func (p Progress) Score() float64 {
	if !p.quantified {
		return ProgressSentinel
	}
	return p.fraction
}
