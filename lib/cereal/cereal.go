/*
	Small helpers for wrangling human-authored serial forms (yaml,
	mostly) into shapes the stricter machine codecs will accept.
*/
package cereal

import (
	"bytes"
	"fmt"
)

/*
	Replace leading tabs with two spaces each, so yaml documents indented
	with tabs parse instead of exploding.  Only indentation is touched;
	tabs appearing after the first non-tab byte of a line are content and
	pass through unchanged.
*/
func Tab2space(x []byte) []byte {
	buf := bytes.Buffer{}
	buf.Grow(len(x) + len(x)/8)
	indenting := true
	for _, b := range x {
		switch {
		case b == '\n':
			indenting = true
			buf.WriteByte(b)
		case indenting && b == '\t':
			buf.WriteString("  ")
		default:
			indenting = false
			buf.WriteByte(b)
		}
	}
	return buf.Bytes()
}

/*
	Yaml unmarshals maps as `map[interface{}]interface{}`, which the
	binary codecs (and anything else sane) refuse to touch.  Walk the
	structure and rebuild every map with string keys.  Non-string keys
	are stringified via the yaml scalar rendering they arrived with --
	in practice this means dates like `2015-01-01` used as keys come out
	as their literal text.
*/
func StringifyMapKeys(value interface{}) interface{} {
	switch value := value.(type) {
	case map[interface{}]interface{}:
		next := make(map[string]interface{}, len(value))
		for k, v := range value {
			next[stringifyKey(k)] = StringifyMapKeys(v)
		}
		return next
	case map[string]interface{}:
		for k, v := range value {
			value[k] = StringifyMapKeys(v)
		}
		return value
	case []interface{}:
		for i := range value {
			value[i] = StringifyMapKeys(value[i])
		}
		return value
	default:
		return value
	}
}

func stringifyKey(k interface{}) string {
	switch k := k.(type) {
	case string:
		return k
	default:
		// Non-string scalar keys (ints, mostly).  Anything weirder is a
		// config authoring error and will fail shape validation
		// downstream anyway.
		return fmt.Sprintf("%v", k)
	}
}
