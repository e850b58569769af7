package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMSISDN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "local safaricom format", input: "0712345678", expected: "254712345678"},
		{name: "local 01 format", input: "0112345678", expected: "254112345678"},
		{name: "bare nine digits", input: "712345678", expected: "254712345678"},
		{name: "international format", input: "254712345678", expected: "254712345678"},
		{name: "plus prefix", input: "+254712345678", expected: "254712345678"},
		{name: "spaces and dashes", input: "0712 345-678", expected: "254712345678"},
		{name: "too short", input: "07123", wantErr: true},
		{name: "non safaricom prefix", input: "0812345678", wantErr: true},
		{name: "letters", input: "07one2345678", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMSISDN(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
