// Package inspector renders any struct as a panel of labeled widgets,
// driven by `inspect` struct tags.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget types for rendering fields.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetBool
	WidgetSection
	WidgetSkip
)

// Options holds the key:value pairs that follow the widget in a tag.
type Options map[string]string

// Format returns the fmt verb for labels, "" when unset.
func (o Options) Format() string { return o["fmt"] }

// Max returns the bar ceiling, 1 when unset or malformed.
func (o Options) Max() float32 {
	if v, err := strconv.ParseFloat(o["max"], 32); err == nil && v > 0 {
		return float32(v)
	}
	return 1
}

// Field is one displayable struct field.
type Field struct {
	Section string // enclosing section, "" at top level
	Name    string
	Value   any
	Widget  Widget
	Options Options
}

var widgetNames = map[string]Widget{
	"label":   WidgetLabel,
	"bar":     WidgetBar,
	"bool":    WidgetBool,
	"section": WidgetSection,
	"skip":    WidgetSkip,
}

// ParseTag splits an `inspect:"widget[,key:value...]"` tag, for example
// `inspect:"bar,max:255"` or `inspect:"label,fmt:%.1f"`. Unknown widget
// names fall back to WidgetAuto.
func ParseTag(tag string) (Widget, Options) {
	options := Options{}
	name, rest, _ := strings.Cut(tag, ",")
	widget := widgetNames[strings.TrimSpace(name)]

	for rest != "" {
		var part string
		part, rest, _ = strings.Cut(rest, ",")
		if k, v, ok := strings.Cut(strings.TrimSpace(part), ":"); ok {
			options[k] = v
		}
	}
	return widget, options
}

// ExtractFields uses reflection to list the fields of a struct. Fields
// tagged as sections are expanded in place, their children carrying the
// section name.
func ExtractFields(v any) []Field {
	return extract(reflect.ValueOf(v), "")
}

func extract(v reflect.Value, section string) []Field {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var fields []Field

	for i := 0; i < v.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)

		if !sf.IsExported() {
			continue
		}

		widget, options := ParseTag(sf.Tag.Get("inspect"))
		switch widget {
		case WidgetSkip:
			continue
		case WidgetSection:
			fields = append(fields, Field{Section: sf.Name, Name: sf.Name, Widget: WidgetSection})
			fields = append(fields, extract(fv, sf.Name)...)
			continue
		case WidgetAuto:
			widget = autoDetectWidget(fv)
		}

		fields = append(fields, Field{
			Section: section,
			Name:    sf.Name,
			Value:   fv.Interface(),
			Widget:  widget,
			Options: options,
		})
	}

	return fields
}

// autoDetectWidget chooses a widget based on the field type.
func autoDetectWidget(v reflect.Value) Widget {
	if v.Kind() == reflect.Bool {
		return WidgetBool
	}
	return WidgetLabel
}

// FormatValue formats a field value as a string. Stringers win over the
// default numeric formatting.
func FormatValue(value any, fmtStr string) string {
	if fmtStr != "" {
		return fmt.Sprintf(fmtStr, value)
	}
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case float32:
		return fmt.Sprintf("%.2f", v)
	case float64:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// GetFloatValue extracts a float32 from numeric kinds.
func GetFloatValue(value any) (float32, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return float32(v.Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float32(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float32(v.Uint()), true
	default:
		return 0, false
	}
}
