package mock

import "github.com/ceramic-mug/hours"

var _ hours.HourDetector = (*HourDetector)(nil)

// HourDetector is a mock implementation of hours.HourDetector.
type HourDetector struct {
	DetectFn func(html string) hours.Hour
}

func (d *HourDetector) Detect(html string) hours.Hour {
	return d.DetectFn(html)
}
