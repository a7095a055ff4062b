/*
	The `web` package is the http surface of the service: a json API in
	the openfisca shape.  Introspection endpoints describe the loaded
	rules, and `POST /calculate` runs the engine.

	The handler owns no state beyond the engine it fronts; everything
	request-scoped (journal, request id) travels in the request context.
*/
package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/ugorji/go/codec"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/engine"
	"yuisekin.net/fisca/params"
)

// Requests bodies larger than this are cut off.  A situation describing
// a whole household is a few kilobytes; a megabyte is already absurd.
const maxBodyBytes = 1 << 20

var jsonHandle = func() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.Canonical = true
	h.Indent = 2
	return h
}()

type handler struct {
	eng     *engine.Engine
	journal log15.Logger
}

func NewHandler(eng *engine.Engine, journal log15.Logger) http.Handler {
	h := &handler{eng: eng, journal: journal}
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.home)
	mux.HandleFunc("/healthz", h.health)
	mux.HandleFunc("/variables", h.variables)
	mux.HandleFunc("/variables/", h.variable)
	mux.HandleFunc("/parameters", h.parameters)
	mux.HandleFunc("/parameters/", h.parameter)
	mux.HandleFunc("/calculate", h.calculate)
	return accessLog(mapErrors(mux), journal)
}

func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respond(w, http.StatusNotFound, errorBody{Error: "no such endpoint"})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"welcome":   "this is a tax and benefit computation API",
		"endpoints": []string{"/variables", "/parameters", "/calculate", "/healthz"},
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	// If this answers at all, the bootstrap finished: rules are loaded
	// and the socket is bound.  The counts give probes something to
	// sanity-check a deploy against.
	respond(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"variables":  h.eng.Registry().Len(),
		"parameters": h.eng.Params().Len(),
	})
}

type variableSummary struct {
	Name   string `json:"name"`
	Entity string `json:"entity"`
	Label  string `json:"description,omitempty"`
}

type variableDetail struct {
	Name             string      `json:"name"`
	Entity           string      `json:"entity"`
	DefinitionPeriod string      `json:"definitionPeriod"`
	ValueType        string      `json:"valueType"`
	Label            string      `json:"description,omitempty"`
	Reference        string      `json:"reference,omitempty"`
	Default          interface{} `json:"defaultValue,omitempty"`
	PossibleValues   []string    `json:"possibleValues,omitempty"`
	HasFormula       bool        `json:"formula"`
}

func (h *handler) variables(w http.ResponseWriter, r *http.Request) {
	all := h.eng.Registry().All()
	out := make([]variableSummary, 0, len(all))
	for _, v := range all {
		out = append(out, variableSummary{
			Name:   v.Name,
			Entity: string(v.Entity),
			Label:  v.Label,
		})
	}
	respond(w, http.StatusOK, out)
}

func (h *handler) variable(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/variables/")
	if name == "" || strings.Contains(name, "/") || !h.eng.Registry().Has(name) {
		respond(w, http.StatusNotFound, errorBody{Error: "no variable named " + name})
		return
	}
	v := h.eng.Registry().Get(name)
	respond(w, http.StatusOK, variableDetail{
		Name:             v.Name,
		Entity:           string(v.Entity),
		DefinitionPeriod: string(v.Grain),
		ValueType:        string(v.Kind),
		Label:            v.Label,
		Reference:        v.Reference,
		Default:          v.Default,
		PossibleValues:   v.Enum,
		HasFormula:       !v.Input(),
	})
}

type parameterDetail struct {
	Path        string                        `json:"path"`
	Description string                        `json:"description,omitempty"`
	Reference   string                        `json:"reference,omitempty"`
	Values      map[string]float64            `json:"values,omitempty"`
	Brackets    []map[string]map[string]float64 `json:"brackets,omitempty"`
}

func (h *handler) parameters(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string][]string{"parameters": h.eng.Params().Paths()})
}

func (h *handler) parameter(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/parameters/")
	// Leaf panics NotFoundError for unknown paths; mapErrors turns
	// that into the 404.
	l := h.eng.Params().Leaf(path)
	respond(w, http.StatusOK, parameterView(l))
}

func parameterView(l *params.Leaf) parameterDetail {
	out := parameterDetail{
		Path:        l.Path,
		Description: l.Description,
		Reference:   l.Reference,
	}
	if l.IsScale() {
		for _, b := range l.Brackets {
			out.Brackets = append(out.Brackets, map[string]map[string]float64{
				"threshold": datedView(b.Threshold),
				"rate":      datedView(b.Rate),
			})
		}
		return out
	}
	out.Values = datedView(l.Values)
	return out
}

func datedView(vs params.DatedValues) map[string]float64 {
	out := make(map[string]float64, len(vs))
	for _, v := range vs {
		out[v.At.String()] = v.Value
	}
	return out
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond(w, http.StatusMethodNotAllowed, errorBody{Error: "calculate takes POST"})
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		respond(w, http.StatusBadRequest, errorBody{Error: "could not read request body"})
		return
	}
	sit := def.ParseSituation(body)
	out := h.eng.Run(sit)
	journalFor(r).Debug("calculation served",
		"persons", len(out.Persons),
		"households", len(out.Households),
	)
	respond(w, http.StatusOK, out)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	codec.NewEncoder(w, jsonHandle).Encode(body)
}
