package export

import (
	"strconv"
	"time"

	"github.com/tahaelba/WinCCToSQL/blob"
)

// timestampLayout matches the historian's CSV convention: space-separated
// date and time with millisecond precision.
const timestampLayout = "2006-01-02 15:04:05.000"

// Row is one exported CSV line.
type Row struct {
	Timestamp string `csv:"timestamp"`
	Value     string `csv:"value"`
}

func analogRow(s blob.AnalogSample) Row {
	return Row{
		Timestamp: s.Ts.Format(timestampLayout),
		Value:     strconv.FormatFloat(s.Value, 'f', 6, 64),
	}
}

func digitalRow(s blob.DigitalSample) Row {
	v := "0"
	if s.State {
		v = "1"
	}

	return Row{
		Timestamp: s.Ts.Format(timestampLayout),
		Value:     v,
	}
}

// parseTimestamp is the inverse of the row formatting, for tests and
// downstream tools that read exported files back.
func parseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampLayout, s, time.UTC)
}
