package record

import (
	"log"

	"github.com/rrstream/afdetect/metrics"
)

// Reporter emits a textual summary of detector performance: one line of
// metrics per record, plus one averages line once a batch of records has
// all been processed. CSV/text file export is not modeled.
type Reporter interface {
	Report(recordName string, c metrics.Confusion, p metrics.Percentages)
	ReportAverages(avg metrics.Percentages, numRecords int)
}

// LogReporter is the default Reporter, writing one line per record and
// one averages line via the standard library logger.
type LogReporter struct {
	*log.Logger
}

// NewLogReporter returns a Reporter that writes through l, or through
// log.Default() if l is nil.
func NewLogReporter(l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}
	return &LogReporter{Logger: l}
}

func (r *LogReporter) Report(recordName string, c metrics.Confusion, p metrics.Percentages) {
	r.Printf("record %s: TP=%d FP=%d FN=%d TN=%d Se=%d%% Sp=%d%% PPV=%d%% ACC=%d%%",
		recordName, c.TP, c.FP, c.FN, c.TN, p.Se, p.Sp, p.PPV, p.ACC)
}

func (r *LogReporter) ReportAverages(avg metrics.Percentages, numRecords int) {
	r.Printf("average over %d record(s): Se=%d%% Sp=%d%% PPV=%d%% ACC=%d%%",
		numRecords, avg.Se, avg.Sp, avg.PPV, avg.ACC)
}
