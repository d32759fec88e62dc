package plural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(ttt *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{n: 0, noun: "type", want: "0 types"},
		{n: 1, noun: "type", want: "1 type"},
		{n: 2, noun: "property", want: "2 properties"},
		{n: 1, noun: "directive", want: "1 directive"},
		{n: 3, noun: "file", want: "3 files"},
	}
	for _, tt := range tests {
		ttt.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.n, tt.noun))
		})
	}
}
