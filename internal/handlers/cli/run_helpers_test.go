package cli

import (
	"reflect"
	"testing"
)

func TestEnvironToMap(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    map[string]string
	}{
		{name: "empty", environ: nil, want: map[string]string{}},
		{name: "simple", environ: []string{"A=1", "B=two"}, want: map[string]string{"A": "1", "B": "two"}},
		{name: "value with equals", environ: []string{"OPTS=a=b"}, want: map[string]string{"OPTS": "a=b"}},
		{name: "empty value", environ: []string{"EMPTY="}, want: map[string]string{"EMPTY": ""}},
		{name: "malformed entries dropped", environ: []string{"NOEQUALS", "=C:=C:\\"}, want: map[string]string{}},
		{name: "last one wins", environ: []string{"A=1", "A=2"}, want: map[string]string{"A": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := environToMap(tt.environ); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("environToMap() = %v, want %v", got, tt.want)
			}
		})
	}
}
