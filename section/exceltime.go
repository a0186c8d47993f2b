package section

import "time"

// excelEpoch is the origin of the Excel 1900 date system with the Windows
// leap-bug convention: day 1 is 1899-12-31, so serials are offsets from
// 1899-12-30.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialToTime converts an Excel 1900-system serial to a UTC instant.
// The integer part counts days, the fraction counts through the day.
func SerialToTime(serial float64) time.Time {
	days := int(serial)
	frac := serial - float64(days)
	secs := frac * 86400.0

	return excelEpoch.AddDate(0, 0, days).Add(time.Duration(secs * float64(time.Second)))
}

// TimeToSerial converts a UTC instant to an Excel 1900-system serial.
func TimeToSerial(t time.Time) float64 {
	d := t.UTC().Sub(excelEpoch)

	return d.Hours() / 24.0
}
