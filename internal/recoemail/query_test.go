package recoemail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryString(t *testing.T) {
	tests := []struct {
		name   string
		params []QueryParam
		want   string
	}{
		{"nil", nil, ""},
		{"all empty", []QueryParam{{"a", ""}, {"b", ""}}, ""},
		{"keeps caller order", []QueryParam{{"z", "1"}, {"a", "2"}, {"m", "3"}}, "z=1&a=2&m=3"},
		{"skips empty values", []QueryParam{{"a", "1"}, {"b", ""}, {"c", "3"}}, "a=1&c=3"},
		{"skips trailing empty", []QueryParam{{"a", "1"}, {"b", ""}}, "a=1"},
		{"space is %20", []QueryParam{{"q", "red shoes"}}, "q=red%20shoes"},
		{"reserved characters", []QueryParam{{"q", "a&b=c/d?"}}, "q=a%26b%3Dc%2Fd%3F"},
		{"base64url untouched", []QueryParam{{"ccp", "eyJh-_Q"}}, "ccp=eyJh-_Q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQueryString(tt.params))
		})
	}
}
