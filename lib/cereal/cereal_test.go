package cereal

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTab2space(t *testing.T) {
	Convey("Given a tab-indented document", t, func() {
		var str string
		str += "wat:\n"
		str += "\tbat:\n"
		str += "\t\tnat: a\tb\n"

		Convey("leading tabs become double spaces, content tabs survive", func() {
			So(string(Tab2space([]byte(str))), ShouldEqual, "wat:\n  bat:\n    nat: a\tb\n")
		})
	})
}

func TestStringifyMapKeys(t *testing.T) {
	Convey("Given the map soup yaml produces", t, func() {
		soup := map[interface{}]interface{}{
			"values": map[interface{}]interface{}{
				"2015-01-01": 0.15,
			},
			"brackets": []interface{}{
				map[interface{}]interface{}{"threshold": 0},
			},
		}

		Convey("every map comes back string-keyed, recursively", func() {
			clean := StringifyMapKeys(soup).(map[string]interface{})
			values := clean["values"].(map[string]interface{})
			So(values["2015-01-01"], ShouldEqual, 0.15)
			brackets := clean["brackets"].([]interface{})
			So(brackets[0].(map[string]interface{})["threshold"], ShouldEqual, 0)
		})
	})
}
