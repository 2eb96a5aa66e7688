package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "rgb with hash", input: "#3399FF", want: color.RGBA{R: 0x33, G: 0x99, B: 0xFF, A: 255}},
		{name: "rgb without hash", input: "000000", want: color.RGBA{A: 255}},
		{name: "rgba", input: "#E6E6E680", want: color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0x80}},
		{name: "too short", input: "#FFF", wantErr: true},
		{name: "not hex", input: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorToHex(t *testing.T) {
	assert.Equal(t, "#3399FF", ColorToHex(HexToColor(0x3399FF)))
	assert.Equal(t, "#E6E6E680", ColorToHex(WithAlpha(HexToColor(0xE6E6E6), 0x80)))
}

func TestBlend(t *testing.T) {
	white := HexToColor(0xFFFFFF)
	black := HexToColor(0x000000)

	assert.Equal(t, black, Blend(white, black), "opaque source replaces destination")
	assert.Equal(t, white, Blend(white, WithAlpha(black, 0)), "transparent source keeps destination")

	half := Blend(white, WithAlpha(black, 128))
	assert.InDelta(t, 127, int(half.R), 1)
	assert.Equal(t, uint8(255), half.A)
}
