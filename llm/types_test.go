package llm

import "testing"

func TestValidRole(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleAssistant, true},
		{RoleSystem, true},
		{"narrator", false},
		{"", false},
		{"User", false},
	}

	for _, tt := range tests {
		if got := ValidRole(tt.role); got != tt.want {
			t.Errorf("ValidRole(%q)=%v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestChatResponse_FirstText(t *testing.T) {
	if got := (ChatResponse{}).FirstText(); got != "" {
		t.Fatalf("FirstText() on empty response = %q", got)
	}

	r := ChatResponse{Choices: []ChatChoice{
		{Index: 0, Message: Assistant("first")},
		{Index: 1, Message: Assistant("second")},
	}}
	if got := r.FirstText(); got != "first" {
		t.Fatalf("FirstText()=%q", got)
	}
}

func TestChatRequest_Clone(t *testing.T) {
	mt := 100
	temp := 0.7
	req := ChatRequest{
		Model:       "m",
		Messages:    []Message{User("hi")},
		MaxTokens:   &mt,
		Temperature: &temp,
		Stop:        []string{"END"},
	}

	cp := req.Clone()
	cp.Messages[0].Content = "mutated"
	*cp.MaxTokens = 1
	cp.Stop[0] = "mutated"

	if req.Messages[0].Content != "hi" {
		t.Fatal("Clone() shares Messages")
	}
	if *req.MaxTokens != 100 {
		t.Fatal("Clone() shares MaxTokens")
	}
	if req.Stop[0] != "END" {
		t.Fatal("Clone() shares Stop")
	}
}

func TestHelperConstructors(t *testing.T) {
	if m := System("s"); m.Role != RoleSystem || m.Content != "s" {
		t.Fatalf("System()=%+v", m)
	}
	if m := User("u"); m.Role != RoleUser || m.Content != "u" {
		t.Fatalf("User()=%+v", m)
	}
	if m := Assistant("a"); m.Role != RoleAssistant || m.Content != "a" {
		t.Fatalf("Assistant()=%+v", m)
	}
}
