package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	inquiryRefPrefix   = "AKP-"
	inquiryRefAlphabet = "0123456789"
	inquiryRefSize     = 6
)

// NewInquiryReference generates a public inquiry reference of the form AKP-######.
// References are shown to clients and quoted in correspondence, so they are
// short numeric codes rather than full record IDs.
func NewInquiryReference() string {
	return inquiryRefPrefix + gonanoid.MustGenerate(inquiryRefAlphabet, inquiryRefSize)
}
