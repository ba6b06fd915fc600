package utils

import "testing"

func TestUploadBase64ImageRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"no comma", "data:image/png;base64"},
		{"no data prefix", "x,y"},
		{"empty meta", ",aGVsbG8="},
		{"bad base64", "data:image/png;base64,!!!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UploadBase64ImageToS3(tc.payload, "avatar"); err == nil {
				t.Errorf("payload %q accepted", tc.payload)
			}
		})
	}
}
