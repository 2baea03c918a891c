// Package metrics accumulates a confusion matrix over a record's
// predictions and derives the classification percentages Se, Sp, PPV,
// and ACC, plus an averaging helper across multiple records.
package metrics

// Confusion accumulates true/false positive/negative counts over all
// samples in a record.
type Confusion struct {
	TP, FP, FN, TN int64
}

// Observe folds one (actual, predicted) pair into the matrix.
func (c *Confusion) Observe(actual, predicted bool) {
	switch {
	case actual && predicted:
		c.TP++
	case !actual && predicted:
		c.FP++
	case actual && !predicted:
		c.FN++
	default:
		c.TN++
	}
}

// Total returns the number of samples observed.
func (c Confusion) Total() int64 {
	return c.TP + c.FP + c.FN + c.TN
}

// Percentages are the derived metrics, each in 0..100 and integer
// truncated, with a zero denominator reported as 0 rather than NaN/Inf.
type Percentages struct {
	Se, Sp, PPV, ACC int64

	// validSe etc. record whether the corresponding denominator was
	// positive, so Average can exclude undefined records.
	validSe, validSp, validPPV, validACC bool
}

// Percentages computes Se, Sp, PPV, ACC from the accumulated matrix.
func (c Confusion) Percentages() Percentages {
	var p Percentages

	if c.TP+c.FN > 0 {
		p.Se = c.TP * 100 / (c.TP + c.FN)
		p.validSe = true
	}
	if c.TN+c.FP > 0 {
		p.Sp = c.TN * 100 / (c.TN + c.FP)
		p.validSp = true
	}
	if c.TP+c.FP > 0 {
		p.PPV = c.TP * 100 / (c.TP + c.FP)
		p.validPPV = true
	}
	if total := c.Total(); total > 0 {
		p.ACC = (c.TP + c.TN) * 100 / total
		p.validACC = true
	}

	return p
}

// Average combines Percentages across multiple records, averaging each
// metric only over the records for which it was defined (positive
// denominator); a record with no positive cases, for instance, leaves
// Se undefined and is excluded from the Se average without skewing it
// toward zero.
func Average(all []Percentages) Percentages {
	var sumSe, sumSp, sumPPV, sumACC int64
	var nSe, nSp, nPPV, nACC int64

	for _, p := range all {
		if p.validSe {
			sumSe += p.Se
			nSe++
		}
		if p.validSp {
			sumSp += p.Sp
			nSp++
		}
		if p.validPPV {
			sumPPV += p.PPV
			nPPV++
		}
		if p.validACC {
			sumACC += p.ACC
			nACC++
		}
	}

	var avg Percentages
	if nSe > 0 {
		avg.Se = sumSe / nSe
		avg.validSe = true
	}
	if nSp > 0 {
		avg.Sp = sumSp / nSp
		avg.validSp = true
	}
	if nPPV > 0 {
		avg.PPV = sumPPV / nPPV
		avg.validPPV = true
	}
	if nACC > 0 {
		avg.ACC = sumACC / nACC
		avg.validACC = true
	}

	return avg
}
