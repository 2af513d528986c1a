package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInquiryReferenceFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^AKP-\d{6}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewInquiryReference())
	}
}
