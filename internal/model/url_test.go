package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicObjectURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"aws virtual-hosted", "", "https://party-pics.s3.us-east-1.amazonaws.com/uploads/1-a.jpg"},
		{"base url override", "https://cdn.example.com", "https://cdn.example.com/uploads/1-a.jpg"},
		{"trailing slashes trimmed", "https://cdn.example.com//", "https://cdn.example.com/uploads/1-a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicObjectURL(tt.baseURL, "party-pics", "us-east-1", "uploads/1-a.jpg"))
		})
	}
}
