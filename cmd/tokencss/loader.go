package main

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/yacobolo/tokencss"
)

// loadGraph reads a variables-export JSON document into the input
// graph. The per-mode value field is polymorphic (scalar, color object,
// or alias object), so each value is classified by shape.
func loadGraph(path string) (*tokencss.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("input %s is not valid JSON", path)
	}
	root := gjson.ParseBytes(data)

	graph := &tokencss.Graph{}

	root.Get("collections").ForEach(func(_, col gjson.Result) bool {
		collection := tokencss.Collection{
			ID:   col.Get("id").String(),
			Name: col.Get("name").String(),
		}
		col.Get("modes").ForEach(func(_, m gjson.Result) bool {
			collection.Modes = append(collection.Modes, tokencss.Mode{
				ID:   m.Get("id").String(),
				Name: m.Get("name").String(),
			})
			return true
		})
		col.Get("variables").ForEach(func(_, v gjson.Result) bool {
			variable := tokencss.Variable{
				ID:          v.Get("id").String(),
				Name:        v.Get("name").String(),
				Description: v.Get("description").String(),
				Type:        tokencss.VarType(v.Get("type").String()),
				Values:      make(map[string]tokencss.RawValue),
			}
			v.Get("values").ForEach(func(modeID, val gjson.Result) bool {
				if raw, ok := classifyValue(val); ok {
					variable.Values[modeID.String()] = raw
				}
				return true
			})
			collection.Variables = append(collection.Variables, variable)
			return true
		})
		graph.Collections = append(graph.Collections, collection)
		return true
	})

	root.Get("textStyles").ForEach(func(_, ts gjson.Result) bool {
		style := tokencss.TextStyle{
			Name:       ts.Get("name").String(),
			Properties: make(map[string]tokencss.TextStyleProperty),
		}
		ts.Get("properties").ForEach(func(key, prop gjson.Result) bool {
			style.Properties[key.String()] = textStyleProperty(prop)
			return true
		})
		graph.TextStyles = append(graph.TextStyles, style)
		return true
	})

	return graph, nil
}

// classifyValue maps one raw JSON value to the closed value union.
// Unrecognized shapes are dropped; the engine treats the mode as
// missing rather than failing the load.
func classifyValue(val gjson.Result) (tokencss.RawValue, bool) {
	switch {
	case val.IsObject() && val.Get("alias").Exists():
		return tokencss.RawValue{
			Kind:  tokencss.KindAlias,
			Alias: val.Get("alias").String(),
		}, true
	case val.IsObject() && val.Get("r").Exists():
		alpha := 1.0
		if a := val.Get("a"); a.Exists() {
			alpha = a.Float()
		}
		return tokencss.RawValue{
			Kind: tokencss.KindColor,
			Color: tokencss.RGBA{
				R: val.Get("r").Float(),
				G: val.Get("g").Float(),
				B: val.Get("b").Float(),
				A: alpha,
			},
		}, true
	case val.Type == gjson.Number:
		return tokencss.RawValue{Kind: tokencss.KindFloat, Float: val.Float()}, true
	case val.Type == gjson.True, val.Type == gjson.False:
		return tokencss.RawValue{Kind: tokencss.KindBool, Bool: val.Bool()}, true
	case val.Type == gjson.String:
		return tokencss.RawValue{Kind: tokencss.KindString, Str: val.String()}, true
	default:
		return tokencss.RawValue{}, false
	}
}

// textStyleProperty maps one composite property: bound to a variable
// id, or a literal with an optional declared unit.
func textStyleProperty(prop gjson.Result) tokencss.TextStyleProperty {
	if v := prop.Get("variable"); v.Exists() {
		return tokencss.TextStyleProperty{Variable: v.String()}
	}
	out := tokencss.TextStyleProperty{Unit: prop.Get("unit").String()}
	value := prop.Get("value")
	if value.Type == gjson.Number {
		out.Num = value.Float()
		out.HasNum = true
	} else {
		out.Str = value.String()
	}
	return out
}
