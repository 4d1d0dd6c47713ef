package app

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/nsemit/internal/event/names"
)

// Report describes the outcome of a single Trigger.
type Report struct {
	Name      string // raw name as passed to Trigger
	Namespace string // namespace of the first token
	Value     string // value of the first token
	Callbacks int    // callbacks registered for the name before dispatch
	Fired     bool   // whether any callback ran
	Result    any    // first callback's result
}

func (app *Application) newReport(raw string) Report {
	first := names.First(raw)
	return Report{
		Name:      raw,
		Namespace: first.Namespace,
		Value:     first.Value,
		Callbacks: app.emitter.Count(raw),
	}
}

// JSON renders the report as a JSON object.
func (r Report) JSON() (string, error) {
	out := "{}"
	fields := []struct {
		path  string
		value any
	}{
		{"name", r.Name},
		{"namespace", r.Namespace},
		{"value", r.Value},
		{"callbacks", r.Callbacks},
		{"fired", r.Fired},
		{"result", r.Result},
	}

	var err error
	for _, f := range fields {
		out, err = sjson.Set(out, f.path, f.value)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// Inspection is a read-only view of the emitter's registrations.
type Inspection struct {
	Namespaces []NamespaceInfo
	Total      int
}

// NamespaceInfo lists a namespace's events in registration order.
type NamespaceInfo struct {
	Name   string
	Events []EventInfo
}

// EventInfo is one event and its callback count.
type EventInfo struct {
	Value     string
	Callbacks int
}

// Inspect snapshots the current registrations.
func (app *Application) Inspect() Inspection {
	var in Inspection
	for _, ns := range app.emitter.Namespaces() {
		info := NamespaceInfo{Name: ns}
		for _, value := range app.emitter.Events(ns) {
			info.Events = append(info.Events, EventInfo{
				Value:     value,
				Callbacks: app.emitter.CountIn(ns, value),
			})
		}
		in.Namespaces = append(in.Namespaces, info)
	}
	in.Total = app.emitter.Len()
	return in
}

// JSON renders the inspection as a JSON object keyed by namespace.
func (in Inspection) JSON() (string, error) {
	out := "{}"
	var err error

	out, err = sjson.Set(out, "total", in.Total)
	if err != nil {
		return "", err
	}
	out, err = sjson.SetRaw(out, "namespaces", "[]")
	if err != nil {
		return "", err
	}

	for i, ns := range in.Namespaces {
		prefix := fmt.Sprintf("namespaces.%d", i)
		if out, err = sjson.Set(out, prefix+".name", ns.Name); err != nil {
			return "", err
		}
		if out, err = sjson.SetRaw(out, prefix+".events", "[]"); err != nil {
			return "", err
		}
		for j, ev := range ns.Events {
			path := fmt.Sprintf("%s.events.%d", prefix, j)
			if out, err = sjson.Set(out, path+".value", ev.Value); err != nil {
				return "", err
			}
			if out, err = sjson.Set(out, path+".callbacks", ev.Callbacks); err != nil {
				return "", err
			}
		}
	}
	return out, nil
}
