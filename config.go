package subplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LayoutFromMap builds a Layout from its key/value form as found in
// YAML, TOML or JSON layout documents:
//
//	fig_size:    [7, 5]            # required, inches
//	rows: 2                        # or layout: [2, 3]
//	cols: 3
//	panel_size:  [1.8, 1.8]        # or subplot_size, or
//	row_heights: [2, 1.5]          #   row_heights and col_widths
//	col_widths:  [2, 2, 2]
//	hspace: 0.3                    # number or list, gap between rows
//	wspace: [0.3, 0.5]             # number or list, gap between columns
//	margins: {left: 0.5, top: 0.5} # missing sides are 0
//
// hspace, wspace and margins may also be nested below a spacing key.
// A list with a single element is broadcast like a number.
// Missing keys and malformed values fail with InvalidConfig, the values
// themselves are validated like in Calculate.
func LayoutFromMap(m map[string]any) (Layout, error) {
	var l Layout
	var err error

	if l.Figure, err = figSize(m); err != nil {
		return Layout{}, err
	}
	if l.Grid, err = gridShape(m); err != nil {
		return Layout{}, err
	}
	if l.Size, err = sizeSpec(m, l.Grid); err != nil {
		return Layout{}, err
	}
	if l.Spacing, err = spacingSpec(m); err != nil {
		return Layout{}, err
	}
	return NewLayout(l.Figure, l.Grid, l.Size, l.Spacing)
}

// RowLayoutFromMap builds a RowLayout from a map with a fig_size key and
// one row_1, row_2, ... key per row. A row looks like
//
//	row_1:
//	  cols: 2
//	  size: [2.9, 2.5]                  # panel width and height
//	  spacing: {hspace: 0.7, wspace: 0.4}
//	  margins: {left: 0.4, bottom: 0.3}
//	  image: [0, 1]                     # or true for every column
//
// Rows are ordered by their number. Missing gaps default to DefaultRowGap.
func RowLayoutFromMap(m map[string]any) (RowLayout, error) {
	fig, err := figSize(m)
	if err != nil {
		return RowLayout{}, err
	}
	keys := rowKeys(m)
	if len(keys) == 0 {
		return RowLayout{}, newError(InvalidConfig, "row_1", "at least one row_N key is required")
	}
	l := RowLayout{Figure: fig}
	for _, k := range keys {
		row, err := rowSpec(k, m[k])
		if err != nil {
			return RowLayout{}, err
		}
		l.Rows = append(l.Rows, row)
	}
	if err := l.validate(); err != nil {
		return RowLayout{}, err
	}
	return l, nil
}

// Decode builds a RowLayout if m has row_N keys and a Layout otherwise.
func Decode(m map[string]any) (Arrangement, error) {
	if len(rowKeys(m)) > 0 {
		return RowLayoutFromMap(m)
	}
	return LayoutFromMap(m)
}

// ParseYAML reads a layout document in YAML.
func ParseYAML(r io.Reader) (Arrangement, error) {
	m := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newError(InvalidConfig, "yaml", "empty document")
		}
		return nil, wrapError(InvalidConfig, err, "yaml", "cannot parse")
	}
	return Decode(m)
}

// ParseTOML reads a layout document in TOML.
func ParseTOML(r io.Reader) (Arrangement, error) {
	m := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, wrapError(InvalidConfig, err, "toml", "cannot parse")
	}
	return Decode(m)
}

// ParseJSON reads a layout document in JSON.
func ParseJSON(r io.Reader) (Arrangement, error) {
	m := map[string]any{}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, wrapError(InvalidConfig, err, "json", "cannot parse")
	}
	return Decode(m)
}

// LoadFile reads a layout document. The format is chosen by extension:
// .yaml, .yml, .toml or .json.
func LoadFile(path string) (Arrangement, error) {
	var parse func(io.Reader) (Arrangement, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	case ".json":
		parse = ParseJSON
	default:
		return nil, newError(InvalidConfig, path, "unknown layout format %q", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapError(InvalidConfig, err, path, "cannot open layout")
	}
	defer f.Close()
	a, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// ----------------------------------------------------------------------------
// keys

func figSize(m map[string]any) (FigureSize, error) {
	v, ok := m["fig_size"]
	if !ok {
		return FigureSize{}, newError(InvalidConfig, "fig_size", "missing")
	}
	w, h, err := pair("fig_size", v)
	return FigureSize{w, h}, err
}

func gridShape(m map[string]any) (GridShape, error) {
	if v, ok := m["layout"]; ok {
		xs, err := list("layout", v)
		if err != nil {
			return GridShape{}, err
		}
		if len(xs) != 2 {
			return GridShape{}, newError(InvalidConfig, "layout",
				"want [rows, cols], got %d values", len(xs))
		}
		rows, err := integer("layout[0]", xs[0])
		if err != nil {
			return GridShape{}, err
		}
		cols, err := integer("layout[1]", xs[1])
		return GridShape{rows, cols}, err
	}
	var g GridShape
	for _, k := range []struct {
		key string
		dst *int
	}{{"rows", &g.Rows}, {"cols", &g.Cols}} {
		v, ok := m[k.key]
		if !ok {
			return GridShape{}, newError(InvalidConfig, k.key, "missing (or give layout: [rows, cols])")
		}
		n, err := integer(k.key, v)
		if err != nil {
			return GridShape{}, err
		}
		*k.dst = n
	}
	return g, nil
}

func sizeSpec(m map[string]any, g GridShape) (SizeSpec, error) {
	rh, hasRows := m["row_heights"]
	cw, hasCols := m["col_widths"]
	if hasRows || hasCols {
		if !hasRows || !hasCols {
			return SizeSpec{}, newError(InvalidConfig, "row_heights",
				"row_heights and col_widths must be given together")
		}
		heights, err := extents("row_heights", rh, g.Rows)
		if err != nil {
			return SizeSpec{}, err
		}
		widths, err := extents("col_widths", cw, g.Cols)
		if err != nil {
			return SizeSpec{}, err
		}
		return PerAxisSize(heights, widths), nil
	}
	for _, key := range []string{"panel_size", "subplot_size"} {
		if v, ok := m[key]; ok {
			w, h, err := pair(key, v)
			return UniformSize(w, h), err
		}
	}
	return SizeSpec{}, newError(InvalidConfig, "panel_size",
		"missing (or give row_heights and col_widths)")
}

func spacingSpec(m map[string]any) (SpacingSpec, error) {
	var s SpacingSpec
	var nested map[string]any
	if v, ok := m["spacing"]; ok {
		var err error
		if nested, err = mapping("spacing", v); err != nil {
			return s, err
		}
	}
	lookup := func(key string) (any, string, bool) {
		if v, ok := m[key]; ok {
			return v, key, true
		}
		if v, ok := nested[key]; ok {
			return v, "spacing." + key, true
		}
		return nil, "", false
	}

	var err error
	if v, name, ok := lookup("hspace"); ok {
		if s.HSpace, err = gaps(name, v); err != nil {
			return s, err
		}
	}
	if v, name, ok := lookup("wspace"); ok {
		if s.WSpace, err = gaps(name, v); err != nil {
			return s, err
		}
	}
	if v, name, ok := lookup("margins"); ok {
		if s.Margins, err = margins(name, v); err != nil {
			return s, err
		}
	}
	return s, nil
}

var rowKey = regexp.MustCompile(`^row_(\d+)$`)

// rowKeys returns the row_N keys of m ordered by N.
func rowKeys(m map[string]any) []string {
	var keys []string
	for k := range m {
		if rowKey.MatchString(k) {
			keys = append(keys, k)
		}
	}
	num := func(k string) int {
		n, _ := strconv.Atoi(rowKey.FindStringSubmatch(k)[1])
		return n
	}
	sort.Slice(keys, func(i, j int) bool { return num(keys[i]) < num(keys[j]) })
	return keys
}

func rowSpec(key string, v any) (RowSpec, error) {
	m, err := mapping(key, v)
	if err != nil {
		return RowSpec{}, err
	}
	row := RowSpec{HSpace: DefaultRowGap, WSpace: DefaultRowGap}

	cols, ok := m["cols"]
	if !ok {
		return RowSpec{}, newError(InvalidConfig, key+".cols", "missing")
	}
	if row.Cols, err = integer(key+".cols", cols); err != nil {
		return RowSpec{}, err
	}
	size, ok := m["size"]
	if !ok {
		return RowSpec{}, newError(InvalidConfig, key+".size", "missing")
	}
	if row.PanelWidth, row.PanelHeight, err = pair(key+".size", size); err != nil {
		return RowSpec{}, err
	}

	spacing := m
	if sv, ok := m["spacing"]; ok {
		if spacing, err = mapping(key+".spacing", sv); err != nil {
			return RowSpec{}, err
		}
	}
	// Row documents name the gap between columns hspace and the gap
	// below the row wspace.
	for _, g := range []struct {
		name string
		dst  *float64
	}{{"hspace", &row.WSpace}, {"wspace", &row.HSpace}} {
		if gv, ok := spacing[g.name]; ok {
			if *g.dst, err = number(key+"."+g.name, gv); err != nil {
				return RowSpec{}, err
			}
		}
	}

	if mv, ok := m["margins"]; ok {
		if row.Margins, err = margins(key+".margins", mv); err != nil {
			return RowSpec{}, err
		}
	}

	switch img := m["image"].(type) {
	case nil:
	case bool:
		if img {
			for c := 0; c < row.Cols; c++ {
				row.Images = append(row.Images, c)
			}
		}
	default:
		xs, err := list(key+".image", img)
		if err != nil {
			return RowSpec{}, err
		}
		for i, x := range xs {
			c, err := integer(fmt.Sprintf("%s.image[%d]", key, i), x)
			if err != nil {
				return RowSpec{}, err
			}
			row.Images = append(row.Images, c)
		}
	}
	return row, nil
}

// ----------------------------------------------------------------------------
// values

// number accepts any numeric type the YAML, TOML and JSON decoders produce.
func number(spec string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, wrapError(InvalidConfig, err, spec, "not a number")
		}
		return f, nil
	}
	return 0, newError(InvalidConfig, spec, "want a number, got %T", v)
}

func integer(spec string, v any) (int, error) {
	f, err := number(spec, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, newError(InvalidConfig, spec, "want an integer, got %g", f)
	}
	return int(f), nil
}

func list(spec string, v any) ([]any, error) {
	switch x := v.(type) {
	case []any:
		return x, nil
	case []float64:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, nil
	case []int:
		out := make([]any, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, nil
	}
	return nil, newError(InvalidConfig, spec, "want a list, got %T", v)
}

func numbers(spec string, v any) ([]float64, error) {
	xs, err := list(spec, v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		if out[i], err = number(fmt.Sprintf("%s[%d]", spec, i), x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func pair(spec string, v any) (float64, float64, error) {
	xs, err := numbers(spec, v)
	if err != nil {
		return 0, 0, err
	}
	if len(xs) != 2 {
		return 0, 0, newError(InvalidConfig, spec, "want [width, height], got %d values", len(xs))
	}
	return xs[0], xs[1], nil
}

// extents reads one extent per band. A number or single element list is
// broadcast to all n bands.
func extents(spec string, v any, n int) ([]float64, error) {
	if x, err := number(spec, v); err == nil {
		return repeat(x, n), nil
	}
	xs, err := numbers(spec, v)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 && n > 0 {
		return repeat(xs[0], n), nil
	}
	return xs, nil
}

func gaps(spec string, v any) (Gaps, error) {
	if x, err := number(spec, v); err == nil {
		return UniformGap(x), nil
	}
	xs, err := numbers(spec, v)
	if err != nil {
		return Gaps{}, err
	}
	if len(xs) == 1 {
		return UniformGap(xs[0]), nil
	}
	return PerGap(xs...), nil
}

func mapping(spec string, v any) (map[string]any, error) {
	switch x := v.(type) {
	case map[string]any:
		return x, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = v
		}
		return m, nil
	}
	return nil, newError(InvalidConfig, spec, "want a mapping, got %T", v)
}

func margins(spec string, v any) (Margins, error) {
	mm, err := mapping(spec, v)
	if err != nil {
		// A single number sets all four sides.
		if x, nerr := number(spec, v); nerr == nil {
			return UniformMargins(x), nil
		}
		return Margins{}, err
	}
	var out Margins
	for _, side := range []struct {
		key string
		dst *float64
	}{{"left", &out.Left}, {"right", &out.Right}, {"top", &out.Top}, {"bottom", &out.Bottom}} {
		if sv, ok := mm[side.key]; ok {
			if *side.dst, err = number(spec+"."+side.key, sv); err != nil {
				return Margins{}, err
			}
		}
	}
	return out, nil
}
