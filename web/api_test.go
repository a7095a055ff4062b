package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/engine"
	"yuisekin.net/fisca/lib/testutil"
	"yuisekin.net/fisca/params"
	"yuisekin.net/fisca/rules"
)

func testHandler(c C) http.Handler {
	tree := params.LoadDir("../parameters")
	eng := engine.New(rules.Default(), tree, testutil.TestLogger(c))
	return NewHandler(eng, testutil.TestLogger(c))
}

func hit(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIntrospectionEndpoints(t *testing.T) {
	Convey("Given the api handler", t, func(c C) {
		h := testHandler(c)

		Convey("the root names the endpoints", func() {
			rec := hit(h, "GET", "/", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "/calculate")
		})

		Convey("unknown paths are 404", func() {
			rec := hit(h, "GET", "/nonsense", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("the health check answers", func() {
			rec := hit(h, "GET", "/healthz", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "ok")
		})

		Convey("the variable catalogue lists the modelled system", func() {
			rec := hit(h, "GET", "/variables", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "income_tax")
			So(rec.Body.String(), ShouldContainSubstring, "housing_allowance")
		})

		Convey("a single variable comes back in full", func() {
			rec := hit(h, "GET", "/variables/income_tax", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "definitionPeriod")
			So(rec.Body.String(), ShouldContainSubstring, "month")
		})

		Convey("an enum variable lists its possible values", func() {
			rec := hit(h, "GET", "/variables/occupancy_status", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "free_lodger")
		})

		Convey("an unknown variable is 404", func() {
			rec := hit(h, "GET", "/variables/nope", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("the parameter index lists dotted paths", func() {
			rec := hit(h, "GET", "/parameters", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "taxes.income_tax_rate")
		})

		Convey("a scalar parameter shows its dated values", func() {
			rec := hit(h, "GET", "/parameters/taxes.income_tax_rate", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "2015-01-01")
		})

		Convey("a scale parameter shows its brackets", func() {
			rec := hit(h, "GET", "/parameters/taxes.social_security_contribution", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "threshold")
		})

		Convey("an unknown parameter is 404", func() {
			rec := hit(h, "GET", "/parameters/taxes.nope", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestCalculateEndpoint(t *testing.T) {
	Convey("Given the api handler", t, func(c C) {
		h := testHandler(c)

		Convey("a calculation request comes back with nulls filled", func() {
			rec := hit(h, "POST", "/calculate", `{
				"persons": {
					"alice": {
						"salary": {"2017-01": 2000},
						"income_tax": {"2017-01": null}
					}
				}
			}`)
			So(rec.Code, ShouldEqual, http.StatusOK)

			out := def.ParseSituation(rec.Body.Bytes())
			So(out.Persons["alice"]["income_tax"]["2017-01"], ShouldAlmostEqual, 300.0)
			// inputs echo back untouched
			So(out.Persons["alice"]["salary"]["2017-01"], ShouldAlmostEqual, 2000.0)
		})

		Convey("yaml situations are accepted too", func() {
			rec := hit(h, "POST", "/calculate", ""+
				"persons:\n"+
				"  bob:\n"+
				"    salary:\n"+
				"      2017-01: 1000\n"+
				"    income_tax:\n"+
				"      2017-01: ~\n")
			So(rec.Code, ShouldEqual, http.StatusOK)
			out := def.ParseSituation(rec.Body.Bytes())
			So(out.Persons["bob"]["income_tax"]["2017-01"], ShouldAlmostEqual, 150.0)
		})

		Convey("a syntactically broken body is 400", func() {
			rec := hit(h, "POST", "/calculate", `{"persons": {`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "error")
		})

		Convey("an unknown variable in the request is 400", func() {
			rec := hit(h, "POST", "/calculate", `{
				"persons": {"alice": {"no_such_thing": {"2017-01": null}}}
			}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "no_such_thing")
		})

		Convey("a household member that doesn't exist is 400", func() {
			rec := hit(h, "POST", "/calculate", `{
				"persons": {"alice": {}},
				"households": {"h1": {"members": ["alice", "ghost"]}}
			}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("GET on calculate is refused", func() {
			rec := hit(h, "GET", "/calculate", "")
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}
