package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{in: "physical", want: CategoryPhysical},
		{in: "book", want: CategoryBook},
		{in: "digital", want: CategoryDigital},
		{in: "membership", want: CategoryMembership},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, in := range []string{"", "furniture", "Physical", "BOOK"} {
		_, err := ParseCategory(in)
		require.Error(t, err, "input %q", in)
	}
}
