package config

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// runLevelScript executes a Tengo level script and reads its globals:
// name, capacity, spawn, conveyor and objects. Globals the script does not
// define keep the values in base.
func runLevelScript(src []byte, base LevelSpec) (LevelSpec, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return LevelSpec{}, fmt.Errorf("run level script: %w", err)
	}

	spec := base
	if compiled.IsDefined("name") {
		spec.Name = compiled.Get("name").String()
	}
	if compiled.IsDefined("capacity") {
		spec.Capacity = compiled.Get("capacity").Int()
	}
	if compiled.IsDefined("spawn") {
		if spec.Spawn, err = vec3From(compiled.Get("spawn").Value()); err != nil {
			return LevelSpec{}, fmt.Errorf("level script spawn: %w", err)
		}
	}
	if compiled.IsDefined("conveyor") {
		m := compiled.Get("conveyor").Map()
		if m == nil {
			return LevelSpec{}, fmt.Errorf("level script conveyor: expected map")
		}
		if v, ok := m["axis"].(string); ok {
			spec.Conveyor.Axis = v
		}
		if v, ok := toFloat(m["threshold"]); ok {
			spec.Conveyor.Threshold = v
		}
		if v, ok := toFloat(m["reset"]); ok {
			spec.Conveyor.Reset = v
		}
	}
	if compiled.IsDefined("objects") {
		spec.Objects = spec.Objects[:0]
		for i, raw := range compiled.Get("objects").Array() {
			o, err := objectFrom(raw)
			if err != nil {
				return LevelSpec{}, fmt.Errorf("level script object %d: %w", i, err)
			}
			spec.Objects = append(spec.Objects, o)
		}
	}
	return spec, nil
}

func objectFrom(raw any) (ObjectSpec, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return ObjectSpec{}, fmt.Errorf("expected map, got %T", raw)
	}
	var o ObjectSpec
	var err error
	if o.Position, err = vec3From(m["position"]); err != nil {
		return ObjectSpec{}, fmt.Errorf("position: %w", err)
	}
	if o.Size, err = vec3From(m["size"]); err != nil {
		return ObjectSpec{}, fmt.Errorf("size: %w", err)
	}
	o.Moving, _ = m["moving"].(bool)
	o.Tag, _ = m["tag"].(string)
	o.Color, _ = m["color"].(string)
	return o, nil
}

// vec3From accepts {x, y, z} maps and [x, y, z] arrays.
func vec3From(raw any) (Vec3, error) {
	switch v := raw.(type) {
	case map[string]any:
		x, okX := toFloat(v["x"])
		y, okY := toFloat(v["y"])
		z, okZ := toFloat(v["z"])
		if !okX || !okY || !okZ {
			return Vec3{}, fmt.Errorf("vector map needs numeric x, y and z")
		}
		return Vec3{X: x, Y: y, Z: z}, nil
	case []any:
		if len(v) != 3 {
			return Vec3{}, fmt.Errorf("vector array needs 3 elements, got %d", len(v))
		}
		var out [3]float64
		for i := range v {
			f, ok := toFloat(v[i])
			if !ok {
				return Vec3{}, fmt.Errorf("vector element %d is %T", i, v[i])
			}
			out[i] = f
		}
		return Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
	}
	return Vec3{}, fmt.Errorf("expected vector, got %T", raw)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
