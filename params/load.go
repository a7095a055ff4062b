package params

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"
	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v2"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/cereal"
)

var codecBounceHandler = &codec.CborHandle{}

// serial shapes as they appear in the yaml files.  dates stay strings
// here; they're parsed into instants during conversion.
type leafSerial struct {
	Description string                        `json:"description"`
	Reference   string                        `json:"reference"`
	Values      map[string]float64            `json:"values"`
	Brackets    []map[string]map[string]float64 `json:"brackets"`
}

/*
	LoadDir reads every `*.yaml` file under the directory into a Tree.

	The parameter path is the file's path relative to the root: directory
	separators become dots, the extension is dropped.  So
	`taxes/income_tax_rate.yaml` is addressed as `taxes.income_tax_rate`.

	Panics ParseError for malformed files, and `def.ConfigError` (the
	parent class) for an unreadable or empty directory -- all fatal; a
	broken rule bundle means a broken build, not something to serve
	around.
*/
func LoadDir(dir string) *Tree {
	tree := &Tree{leaves: map[string]*Leaf{}}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		dotted := strings.ReplaceAll(strings.TrimSuffix(rel, ".yaml"), string(filepath.Separator), ".")
		ser, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree.leaves[dotted] = parseLeaf(dotted, ser)
		return nil
	})
	if err != nil {
		panic(def.ConfigError.New("could not read parameter dir %q: %s", dir, err))
	}
	if tree.Len() == 0 {
		panic(def.ConfigError.New("parameter dir %q holds no parameter files", dir))
	}
	return tree
}

// Parse one parameter file.  MAY PANIC (ParseError).
func parseLeaf(path string, ser []byte) *Leaf {
	ser = cereal.Tab2space(ser)
	var raw interface{}
	if err := yaml.Unmarshal(ser, &raw); err != nil {
		panic(ParseError.New("parameter %q: could not parse: %s", path, errors.GetMessage(err)))
	}
	raw = cereal.StringifyMapKeys(raw)
	var buf bytes.Buffer
	if err := codec.NewEncoder(&buf, codecBounceHandler).Encode(raw); err != nil {
		panic(ParseError.New("parameter %q: could not parse: %s", path, errors.GetMessage(err)))
	}
	var serial leafSerial
	if err := codec.NewDecoder(&buf, codecBounceHandler).Decode(&serial); err != nil {
		panic(ParseError.New("parameter %q: could not parse: %s", path, errors.GetMessage(err)))
	}
	return convertLeaf(path, serial)
}

func convertLeaf(path string, serial leafSerial) *Leaf {
	leaf := &Leaf{
		Path:        path,
		Description: serial.Description,
		Reference:   serial.Reference,
	}
	switch {
	case serial.Values != nil && serial.Brackets != nil:
		panic(ParseError.New("parameter %q declares both `values` and `brackets`; pick one", path))
	case serial.Values != nil:
		leaf.Values = convertDated(path, serial.Values)
	case serial.Brackets != nil:
		for _, b := range serial.Brackets {
			threshold, okT := b["threshold"]
			rate, okR := b["rate"]
			if !okT || !okR {
				panic(ParseError.New("parameter %q: every bracket needs `threshold` and `rate`", path))
			}
			leaf.Brackets = append(leaf.Brackets, Bracket{
				Threshold: convertDated(path, threshold),
				Rate:      convertDated(path, rate),
			})
		}
	default:
		panic(ParseError.New("parameter %q declares neither `values` nor `brackets`", path))
	}
	return leaf
}

func convertDated(path string, m map[string]float64) DatedValues {
	vs := make(DatedValues, 0, len(m))
	for date, value := range m {
		var at def.Instant
		try.Do(func() {
			at = def.ParseInstant(date)
		}).CatchAll(func(error) {
			panic(ParseError.New("parameter %q: bad date key %q", path, date))
		}).Done()
		vs = append(vs, DatedValue{At: at, Value: value})
	}
	vs.sort()
	return vs
}
