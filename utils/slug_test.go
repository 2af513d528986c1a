package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Understanding Land Rates in Kenya": "understanding-land-rates-in-kenya",
		"M&A Outlook 2026":                  "m-a-outlook-2026",
		"  Leading   Spaces  ":              "leading-spaces",
		"Already-Slugged":                   "already-slugged",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
