package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Export serializes payload to indented JSON and names the file `{kind}-{qualifier}-{YYYY-MM-DD}.json`.
func Export(kind, qualifier string, payload interface{}, now time.Time) (filename string, data []byte, err error) {
	data, err = json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, errors.Wrap(err, "marshalling export")
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{kind, qualifier, FormatDate(now)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-") + ".json", data, nil
}
