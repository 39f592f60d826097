package assistant

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/vyra-go/internal/domain"
)

func TestBuildMessagesOrder(t *testing.T) {
	history := []domain.Exchange{
		{UserText: "what is go", AssistantText: "A language."},
		{UserText: "who made it", AssistantText: "Google."},
	}

	got := BuildMessages("be brief", history, "is it fast")
	want := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "be brief"},
		{Role: domain.RoleUser, Content: "what is go"},
		{Role: domain.RoleAssistant, Content: "A language."},
		{Role: domain.RoleUser, Content: "who made it"},
		{Role: domain.RoleAssistant, Content: "Google."},
		{Role: domain.RoleUser, Content: "is it fast"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildMessages() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMessagesWithoutHistory(t *testing.T) {
	got := BuildMessages("sys", nil, "hello there")
	want := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "sys"},
		{Role: domain.RoleUser, Content: "hello there"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildMessages() mismatch (-want +got):\n%s", diff)
	}
}
