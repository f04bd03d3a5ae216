package chat2pdf

import (
	"time"

	"github.com/alnah/go-chat2pdf/internal/dateutil"
)

// FilenamePrefix starts every generated output name.
const FilenamePrefix = "chatbot_response_"

// timestampLayout is dateutil.TimestampFormat in Go layout form.
var timestampLayout = mustLayout(dateutil.TimestampFormat)

// GenerateFilename returns chatbot_response_YYYYMMDD_HHMMSS.pdf for now.
func GenerateFilename(now time.Time) string {
	return FilenamePrefix + now.Format(timestampLayout) + ".pdf"
}

func mustLayout(format string) string {
	layout, err := dateutil.ParseDateFormat(format)
	if err != nil {
		panic("chat2pdf: invalid timestamp format: " + err.Error())
	}
	return layout
}
