package ws

import "testing"

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"build", `{"seq":1,"type":"build","x":30,"z":0,"tower":"CANNON"}`, true},
		{"start wave", `{"type":"start_wave"}`, true},
		{"connect", `{"type":"connect","a":1,"b":2}`, true},
		{"sell", `{"type":"sell","node":5}`, true},
		{"build without tower", `{"type":"build","x":30,"z":0}`, false},
		{"connect without b", `{"type":"connect","a":1}`, false},
		{"unknown type", `{"type":"teleport"}`, false},
		{"extra field", `{"type":"cancel","admin":true}`, false},
		{"negative node", `{"type":"upgrade","node":-1}`, false},
		{"not json", `build cannon`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCommand([]byte(tt.raw))
			if (err == nil) != tt.ok {
				t.Fatalf("validateCommand(%s) = %v, want ok=%v", tt.raw, err, tt.ok)
			}
		})
	}
}
