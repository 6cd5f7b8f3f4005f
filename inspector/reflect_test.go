package inspector

import (
	"testing"

	"github.com/pthm-cable/spectaculife/components"
	"github.com/pthm-cable/spectaculife/genome"
	"github.com/pthm-cable/spectaculife/grid"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar,max:255", WidgetBar, map[string]string{"max": "255"}},
		{"label,fmt:%.2f", WidgetLabel, map[string]string{"fmt": "%.2f"}},
		{"section", WidgetSection, map[string]string{}},
		{"skip", WidgetSkip, map[string]string{}},
		{"unknown", WidgetAuto, map[string]string{}},
		{"bar, max:8 ,fmt:%d", WidgetBar, map[string]string{"max": "8", "fmt": "%d"}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			w, opts := ParseTag(tt.tag)
			if w != tt.widget {
				t.Errorf("widget = %v, want %v", w, tt.widget)
			}
			if len(opts) != len(tt.opts) {
				t.Fatalf("options = %v, want %v", opts, tt.opts)
			}
			for k, v := range tt.opts {
				if opts[k] != v {
					t.Errorf("option %s = %q, want %q", k, opts[k], v)
				}
			}
		})
	}
}

func TestExtractFieldsWorldCell(t *testing.T) {
	cell := components.WorldCell{
		Life: components.NewStem(&genome.Genome{}, 12.5, grid.Up, 40),
		Soil: components.SoilCell{Organics: 7, Energy: 1.25},
		Air:  components.AirCell{Pollution: 3},
	}

	fields := ExtractFields(&cell)

	byName := make(map[string]Field)
	var sections []string
	for _, f := range fields {
		if f.Widget == WidgetSection {
			sections = append(sections, f.Name)
			continue
		}
		byName[f.Section+"."+f.Name] = f
	}

	if len(sections) != 3 || sections[0] != "Life" || sections[1] != "Soil" || sections[2] != "Air" {
		t.Errorf("sections = %v, want [Life Soil Air]", sections)
	}
	if _, ok := byName["Life.Genome"]; ok {
		t.Error("genome should be skipped")
	}

	organics, ok := byName["Soil.Organics"]
	if !ok || organics.Widget != WidgetBar || organics.Options.Max() != 255 {
		t.Errorf("Soil.Organics = %+v", organics)
	}
	if v, ok := GetFloatValue(organics.Value); !ok || v != 7 {
		t.Errorf("organics value = %v, %v", v, ok)
	}

	role := byName["Life.Role"]
	if got := FormatValue(role.Value, role.Options.Format()); got != "stem" {
		t.Errorf("role formatted as %q, want stem", got)
	}
	energy := byName["Life.Energy"]
	if got := FormatValue(energy.Value, energy.Options.Format()); got != "12.50" {
		t.Errorf("energy formatted as %q", got)
	}
	parent := byName["Life.ParentDir"]
	if got := FormatValue(parent.Value, ""); got != "up" {
		t.Errorf("parent formatted as %q, want up", got)
	}
	if alive := byName["Life.Alive"]; alive.Widget != WidgetBool {
		t.Errorf("Alive widget = %v", alive.Widget)
	}
}

func TestExtractFieldsNonStruct(t *testing.T) {
	if f := ExtractFields(42); f != nil {
		t.Errorf("ExtractFields(int) = %v, want nil", f)
	}
	var nilCell *components.WorldCell
	if f := ExtractFields(nilCell); f != nil {
		t.Errorf("ExtractFields(nil) = %v, want nil", f)
	}
}

func TestOptionsMax(t *testing.T) {
	tests := []struct {
		opts Options
		want float32
	}{
		{Options{}, 1},
		{Options{"max": "255"}, 255},
		{Options{"max": "abc"}, 1},
		{Options{"max": "-3"}, 1},
	}
	for _, tt := range tests {
		if got := tt.opts.Max(); got != tt.want {
			t.Errorf("%v.Max() = %v, want %v", tt.opts, got, tt.want)
		}
	}
}
