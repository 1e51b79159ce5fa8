package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictSanitizer_Sanitize(t *testing.T) {
	s := NewTextSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "gg wp", want: "gg wp"},
		{name: "empty", in: "", want: ""},
		{name: "bold", in: "<b>gg</b>", want: "gg"},
		{name: "script", in: `<script>alert(1)</script>hi`, want: "hi"},
		{name: "handler", in: `<img src="x" onerror="alert(1)">look`, want: "look"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sanitize(tt.in))
		})
	}
}
