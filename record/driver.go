package record

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/rrstream/afdetect"
	"github.com/rrstream/afdetect/metrics"
)

// rhythmAFIBPrefix is the auxiliary-string prefix that marks a rhythm
// annotation as the start of an atrial-fibrillation episode.
const rhythmAFIBPrefix = "(AFIB"

// Driver streams RR intervals and ground-truth AF labels from a Source
// and pushes them through a Detector, accumulating a confusion matrix.
// It holds no state shared across records: call Run once per record; it
// constructs a fresh Detector for each call.
type Driver struct {
	cfg      afdetect.Config
	reporter Reporter
}

// NewDriver returns a Driver that builds one Detector per record from
// cfg and reports through reporter. If reporter is nil, a LogReporter
// writing to log.Default() is used.
func NewDriver(cfg afdetect.Config, reporter Reporter) *Driver {
	if reporter == nil {
		reporter = NewLogReporter(nil)
	}
	return &Driver{cfg: cfg, reporter: reporter}
}

// RecordResult is what Run produces for one record: the confusion matrix,
// its derived percentages, and (if Config.DebugDump is set) the full
// per-sample debug tap.
type RecordResult struct {
	Confusion   metrics.Confusion
	Percentages metrics.Percentages
	Debug       []afdetect.StepResult // nil unless Config.DebugDump
}

// NamedSource pairs a record name with the Source that streams it, for
// batch processing with RunAll.
type NamedSource struct {
	Name string
	Src  Source
}

// Run streams one record from src through a fresh Detector until both
// annotation streams are exhausted, deriving RR intervals and ground
// truth by merging the two annotation streams in timestamp order:
// whichever stream has the smaller timestamp is processed next, and a
// rhythm annotation is applied before a co-located QRS annotation is
// turned into an RR interval, so the ground-truth label is already
// current for the interval that ends on it.
//
// It returns ErrEmptyRecord if no RR interval was ever derived, so a
// caller driving many records can skip it and exclude it from any
// averaging. A panic raised while processing the record is recovered and
// converted into an error for the same reason.
func (d *Driver) Run(recordName string, src Source) (result RecordResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("record: panic recovered while processing %q: %v", recordName, r)
		}
	}()

	det, detErr := afdetect.New(d.cfg)
	if detErr != nil {
		return RecordResult{}, detErr
	}

	sps := src.SampleFreq()
	if sps <= 0 {
		sps = d.cfg.SPSOverride
	}
	tps := src.AnnotationFreq()
	if tps < sps {
		tps = sps
	}

	var (
		haveStart   bool
		t0          int64
		actual      bool
		observed    int
		lastClamped int64
	)

	nextQRS, qrsOK := pullNext(src.NextQRS)
	nextRhythm, rhythmOK := pullNext(src.NextRhythm)

	for qrsOK || rhythmOK {
		if rhythmOK && (!qrsOK || nextRhythm.Time <= nextQRS.Time) {
			actual = strings.HasPrefix(nextRhythm.Aux, rhythmAFIBPrefix)
			nextRhythm, rhythmOK = pullNext(src.NextRhythm)
			continue
		}

		t1 := rescale(nextQRS.Time, sps, tps)

		if haveStart {
			rr := int32(t1 - t0)
			step := det.Step(rr)
			result.Confusion.Observe(actual, step.Predicted)
			observed++

			if d.cfg.DebugDump {
				result.Debug = append(result.Debug, step)
			}

			if c := det.ClampCount(); c != lastClamped {
				log.Printf("record %s: word index clamped into range (count=%d)", recordName, c)
				lastClamped = c
			}
		}

		haveStart = true
		t0 = t1

		nextQRS, qrsOK = pullNext(src.NextQRS)
	}

	if observed == 0 {
		return RecordResult{}, ErrEmptyRecord
	}

	result.Percentages = result.Confusion.Percentages()
	d.reporter.Report(recordName, result.Confusion, result.Percentages)

	return result, nil
}

// RunAll runs every record in turn through Run and reports the averaged
// percentages over the records that produced a result. A record that
// fails (including one that returns ErrEmptyRecord) is logged and
// excluded from both the returned slice and the average, matching Run's
// per-record isolation: one bad record never aborts the rest of the
// batch. RunAll returns ErrEmptyRecord itself if every record failed.
func (d *Driver) RunAll(records []NamedSource) ([]RecordResult, error) {
	results := make([]RecordResult, 0, len(records))
	percentages := make([]metrics.Percentages, 0, len(records))

	for _, r := range records {
		res, err := d.Run(r.Name, r.Src)
		if err != nil {
			log.Printf("record %s: skipped (%v)", r.Name, err)
			continue
		}
		results = append(results, res)
		percentages = append(percentages, res.Percentages)
	}

	if len(results) == 0 {
		return results, ErrEmptyRecord
	}

	avg := metrics.Average(percentages)
	d.reporter.ReportAverages(avg, len(percentages))

	return results, nil
}

// rescale maps a timestamp in the annotation clock (tps) onto the
// detector's sampling clock (sps): t' = floor(t*sps/tps + 0.5). The
// overshoot guard compares t' with that same rounded value, which floor
// never exceeds, so no decrement is ever applied and no inverse mapping
// back to the annotation clock is checked. When tps == sps this is the
// identity.
func rescale(t int64, sps, tps float64) int64 {
	if tps == sps {
		return t
	}
	scaled := float64(t)*sps/tps + 0.5
	t1 := int64(math.Floor(scaled))
	if float64(t1) > scaled {
		t1--
	}
	return t1
}

// pullNext calls next and reports whether a value is available; any
// error (io.EOF included) ends that stream for the rest of the record.
func pullNext(next func() (Annotation, error)) (Annotation, bool) {
	a, err := next()
	if err != nil {
		return Annotation{}, false
	}
	return a, true
}
