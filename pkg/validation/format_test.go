package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Valid yaml format",
			format:    "yaml",
			expectErr: false,
		},
		{
			name:      "CSV no longer supported",
			format:    "csv",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " json ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error, got nil", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		identifier string
		expectErr  bool
	}{
		{"capital-gains-tax", false},
		{"roi", false},
		{"401k-match", false},
		{"", true},
		{"Capital-Gains", true},
		{"capital gains", true},
		{"-leading", true},
		{"trailing-", true},
		{"double--hyphen", true},
		{"nested/path", true},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			err := ValidateIdentifier(tt.identifier)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateIdentifier(%q) expected error, got nil", tt.identifier)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateIdentifier(%q) unexpected error: %v", tt.identifier, err)
			}
		})
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		raw       string
		expectErr bool
	}{
		{"https://calculators.example.com", false},
		{"http://localhost:8080", false},
		{"https://example.com/finance", false},
		{"", true},
		{"example.com", true},
		{"ftp://example.com", true},
		{"https://example.com/?q=1", true},
		{"https://example.com/#top", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := ValidateBaseURL(tt.raw)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateBaseURL(%q) expected error, got nil", tt.raw)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateBaseURL(%q) unexpected error: %v", tt.raw, err)
			}
		})
	}
}
