// Copyright (c) 2017-2019 Andrew Goulas
// Licensed under the MIT license.

package npccmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericValidators(t *testing.T) {
	tests := []struct {
		in                             string
		notInteger, notDouble, isFloat bool
	}{
		{"42", false, false, true},
		{"-7", false, false, true},
		{"+7", false, false, true},
		{"2147483647", false, false, true},
		{"2147483648", true, false, true},
		{"3.14", true, false, true},
		{"1e5", true, false, true},
		{"1e300", true, false, false},
		{"", true, true, false},
		{" 42", true, true, false},
		{"42 ", true, true, false},
		{"3,14", true, true, false},
		{"abc", true, true, false},
	}

	for _, tt := range tests {
		s := tt.in
		assert.Equal(t, tt.notInteger, NotInteger(&s), "NotInteger(%q)", s)
		assert.Equal(t, tt.notDouble, NotDouble(&s), "NotDouble(%q)", s)
		assert.Equal(t, tt.isFloat, IsFloat(&s), "IsFloat(%q)", s)
	}
}

func TestNumericValidatorsNil(t *testing.T) {
	assert.True(t, NotInteger(nil))
	assert.True(t, NotDouble(nil))
	assert.False(t, IsFloat(nil))
}
