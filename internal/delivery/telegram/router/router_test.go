package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseData(t *testing.T) {
	tests := []struct {
		raw, key, payload string
	}{
		{"\fpay_pick|Ben", "pay_pick", "Ben"},
		{"pay_pick|Ben", "pay_pick", "Ben"},
		{"\fpayall_confirm", "payall_confirm", ""},
		{"\fwork_pick|", "work_pick", ""},
		{"\fedit|Mary|Ann", "edit", "Mary|Ann"},
		{"", "", ""},
	}
	for _, tt := range tests {
		key, payload := ParseData(tt.raw)
		assert.Equal(t, tt.key, key, tt.raw)
		assert.Equal(t, tt.payload, payload, tt.raw)
	}
}
