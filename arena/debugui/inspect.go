package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type fieldInfo struct {
	name  string
	index int
}

// fieldCache remembers the exported fields of component types.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

var components = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}

func (c *fieldCache) get(t reflect.Type) []fieldInfo {
	c.mu.RLock()
	cached, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, fieldInfo{name: f.Name, index: i})
			}
		}
	}

	c.mu.Lock()
	c.fields[t] = fields
	c.mu.Unlock()
	return fields
}

// describe renders each exported field of a component as "Name: value".
// Marker components yield no lines.
func describe(component any) []string {
	v := reflect.ValueOf(component)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return []string{fmt.Sprint(v.Interface())}
	}

	var lines []string
	for _, field := range components.get(v.Type()) {
		lines = append(lines, fmt.Sprintf("%s: %v", field.name, v.Field(field.index).Interface()))
	}
	return lines
}
