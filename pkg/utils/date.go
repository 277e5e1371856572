package utils

import "time"

// ConvertTimestampToHumanReadableFormat renders a UnixMilli timestamp the way
// receipts and the order ledger display it.
func ConvertTimestampToHumanReadableFormat(timestamp int64) string {
	t := time.UnixMilli(timestamp)
	outputFormat := "02 January 2006, 15:04"

	return t.Local().Format(outputFormat)
}
