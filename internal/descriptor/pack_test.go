package descriptor

import "testing"

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    int64
		wantErr bool
	}{
		{"three components", "1.2.3", 10203, false},
		{"two digit middle", "1.23.4", 12304, false},
		{"two components", "2.5", 205, false},
		{"single component", "7", 7, false},
		{"zeros", "1.0.0", 10000, false},
		{"leading zero component", "1.05.0", 10500, false},
		{"max component", "99.99", 9999, false},
		{"component too large", "1.100.0", 0, true},
		{"non numeric", "1.x.0", 0, true},
		{"negative", "1.-2", 0, true},
		{"empty component", "1..2", 0, true},
		{"trailing dot", "1.2.", 0, true},
		{"empty", "", 0, true},
		{"whitespace", "1. 2", 0, true},
		{"overflow", "1.1.1.1.1.1.1.1.1.1.1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(tt.version)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Pack(%q) expected error but got %d", tt.version, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pack(%q) unexpected error: %v", tt.version, err)
			}
			if got != tt.want {
				t.Errorf("Pack(%q) = %d, want %d", tt.version, got, tt.want)
			}
		})
	}
}

func TestPackIsLeftToRight(t *testing.T) {
	// Appending a component multiplies the prefix by 100.
	prefix, err := Pack("3.14")
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	full, err := Pack("3.14.15")
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if full != prefix*100+15 {
		t.Errorf("Pack(3.14.15) = %d, want %d", full, prefix*100+15)
	}
}
