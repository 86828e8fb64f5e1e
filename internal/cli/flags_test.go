package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", flags.Format, "lines"},
		{"Strict", flags.Strict, true},
		{"LogLevel", flags.LogLevel, "warn"},
		{"Limit", flags.Limit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Interactive", flags.Interactive},
		{"Archive", flags.Archive},
		{"CountOnly", flags.CountOnly},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"ExportFile", flags.ExportFile},
		{"BatchFile", flags.BatchFile},
		{"LookupDB", flags.LookupDB},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Flags)
		wantErr bool
	}{
		{"defaults", func(f *Flags) {}, false},
		{"list format", func(f *Flags) { f.Format = "list" }, false},
		{"json format", func(f *Flags) { f.Format = "json" }, false},
		{"unknown format", func(f *Flags) { f.Format = "yaml" }, true},
		{"negative limit", func(f *Flags) { f.Limit = -1 }, true},
		{"interactive with batch", func(f *Flags) {
			f.Interactive = true
			f.BatchFile = "words.txt"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)
			err := ValidateFlags(flags)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
