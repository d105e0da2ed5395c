package platform

import "testing"

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		in      string
		want    MouseButton
		wantErr bool
	}{
		{"left", MouseLeft, false},
		{"LEFT", MouseLeft, false},
		{"right", MouseRight, false},
		{"middle", MouseMiddle, false},
		{"", MouseLeft, false},
		{"primary", MouseLeft, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMouseButton(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMouseButton(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMouseButton(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMouseButtonString(t *testing.T) {
	if MouseLeft.String() != "left" || MouseRight.String() != "right" || MouseMiddle.String() != "middle" {
		t.Error("unexpected MouseButton string values")
	}
}
