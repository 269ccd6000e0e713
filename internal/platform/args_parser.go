package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Argument separators
const (
	EntrySeparator   = "@"
	NameURLSeparator = "#"
)

// ErrMalformedArgument is returned when an entry has no name/URL separator
var ErrMalformedArgument = errors.New("malformed argument")

// ParseArgument splits "name1#url1@name2#url2" into parallel slices of names
// and URLs. Fields after a second '#' in an entry are ignored.
func ParseArgument(arg string) (names []string, urls []string, err error) {
	for i, entry := range strings.Split(arg, EntrySeparator) {
		fields := strings.Split(entry, NameURLSeparator)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%w: entry %d %q has no %q", ErrMalformedArgument, i, entry, NameURLSeparator)
		}
		names = append(names, fields[0])
		urls = append(urls, fields[1])
	}
	return names, urls, nil
}
