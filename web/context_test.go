package web

import "testing"

func TestHeadButtonNames(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantHead   string
		wantButton string
	}{
		{"create form", "/new/", "Add post", "Add"},
		{"edit form", "/alice/17/edit/", "Edit post", "Save"},
		{"index", "/", "head_name", "button_name"},
		{"profile", "/alice/", "head_name", "button_name"},
		{"post detail", "/alice/17/", "head_name", "button_name"},
		{"username containing edit", "/editor/", "head_name", "button_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, button := headButtonNames(tt.path)
			if head != tt.wantHead || button != tt.wantButton {
				t.Errorf("headButtonNames(%q) = (%q, %q), want (%q, %q)",
					tt.path, head, button, tt.wantHead, tt.wantButton)
			}
		})
	}
}
