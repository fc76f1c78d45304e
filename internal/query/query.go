// Package query builds list-endpoint query strings with a stable,
// reproducible parameter order.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Pair is one candidate query parameter. Pairs that are not Set are
// omitted from the encoded string entirely rather than sent empty.
type Pair struct {
	Key   string
	Value string
	Set   bool
}

// Int wraps an integer filter. Zero means the caller did not provide it.
func Int(key string, v int) Pair {
	return Pair{Key: key, Value: strconv.Itoa(v), Set: v > 0}
}

// String wraps a string filter. Empty means the caller did not provide it.
func String(key string, v string) Pair {
	return Pair{Key: key, Value: v, Set: v != ""}
}

// Encode joins the set pairs in the order given, percent-encoding values,
// and returns either "" or a string starting with "?".
func Encode(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if !p.Set {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
