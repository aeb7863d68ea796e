package features

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Write prints list to w in the given output format.
//   - lines: one feature per line
//   - csv: a single comma separated line, as taken by `--features`
//   - json: a JSON array
func Write(w io.Writer, list []string, format string) error {
	switch format {
	case FormatLines:
		for _, name := range list {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}
		return nil
	case FormatCSV:
		_, err := fmt.Fprintln(w, strings.Join(list, ","))
		return err
	case FormatJSON:
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to encode features: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
