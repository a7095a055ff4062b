package def

import (
	"bytes"

	"github.com/spacemonkeygo/errors"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v2"

	"yuisekin.net/fisca/lib/cereal"
)

var codecBounceHandler = &codec.CborHandle{}

/*
	ParseSituation accepts a situation in json or yaml (yaml being a
	superset of json, one parser covers both; tabs in indentation are
	tolerated).

	The serial form is bounced through an intermediate binary codec so
	that the typed decode -- with its strictness about shapes -- is the
	same no matter which surface syntax the bytes arrived in.
*/
func ParseSituation(ser []byte) *Situation {
	ser = cereal.Tab2space(ser)
	var raw interface{}
	if err := yaml.Unmarshal(ser, &raw); err != nil {
		panic(ValidationError.New("could not parse situation: %s", errors.GetMessage(err)))
	}
	raw = cereal.StringifyMapKeys(raw)
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecBounceHandler).Encode(raw); err != nil {
		panic(ValidationError.New("could not parse situation: %s", errors.GetMessage(err)))
	}
	var sit Situation
	if err := codec.NewDecoder(&buf, codecBounceHandler).Decode(&sit); err != nil {
		panic(ValidationError.New("could not parse situation: %s", errors.GetMessage(err)))
	}
	return &sit
}
