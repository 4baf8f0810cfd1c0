package main

import (
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expFlags map[string]any
	}{
		"test_01": {
			args:     []string{"-start=2021-08-31"},
			expFlags: map[string]any{"start": "2021-08-31"},
		},
		"test_02": {
			args:     []string{"--start=2021-08-31"},
			expFlags: map[string]any{"start": "2021-08-31"},
		},
		"test_03": {
			args:     []string{"-format", "%b %Y"},
			expFlags: map[string]any{"format": "%b %Y"},
		},
		"test_04": {
			args:     []string{"--verbose"},
			expFlags: map[string]any{"verbose": true},
		},
		"test_05": {
			args: []string{"--verbose", "-end=2022-02-28", "--start", "2021-08-31"},
			expFlags: map[string]any{
				"verbose": true,
				"end":     "2022-02-28",
				"start":   "2021-08-31",
			},
		},
		"test_06": {
			args: []string{"--start", "2021-08-31", "stray", "-format", "-", "--verbose"},
			expFlags: map[string]any{
				"start":   "2021-08-31",
				"format":  "-",
				"verbose": true,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res := parseFlags(test.args)
			if !reflect.DeepEqual(test.expFlags, res) {
				t.Fatalf("want %v, have %v", test.expFlags, res)
			}
		})
	}
}
