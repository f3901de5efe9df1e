package transfer

import (
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"
)

// ProgressReporter follows a multipart upload.
type ProgressReporter interface {
	Start(totalBytes int64, parts int)
	// Update is called after part done of parts was acknowledged.
	Update(done, parts int)
	Finish()
}

// Percent returns done as a percentage of parts.
func Percent(done, parts int) int {
	if parts <= 0 {
		return 0
	}
	return done * 100 / parts
}

type logProgressReporter struct {
	logger      log.Logger
	lastPercent int
}

// NewLogProgressReporter returns a ProgressReporter printing through logger.
func NewLogProgressReporter(logger log.Logger) ProgressReporter {
	return &logProgressReporter{logger: logger}
}

func (r *logProgressReporter) Start(totalBytes int64, parts int) {
	r.lastPercent = -1
	r.logger.Infof("Uploading %s in %d parts", units.HumanSizeWithPrecision(float64(totalBytes), 3), parts)
}

func (r *logProgressReporter) Update(done, parts int) {
	percent := Percent(done, parts)
	if percent == r.lastPercent {
		return
	}
	r.lastPercent = percent
	r.logger.Printf("Upload progress: %d%% (%d/%d parts)", percent, done, parts)
}

func (r *logProgressReporter) Finish() {
	r.logger.Donef("Upload progress: 100%%")
}
