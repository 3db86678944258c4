package mqtt

import "testing"

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"mythicbot/modlog/123", "mythicbot/modlog/123", true},
		{"mythicbot/modlog/+", "mythicbot/modlog/123", true},
		{"mythicbot/modlog/+", "mythicbot/modlog/123/extra", false},
		{"mythicbot/#", "mythicbot/modlog/123", true},
		{"mythicbot/#", "mythicbot", true},
		{"mythicbot/status", "mythicbot/modlog", false},
		{"+/modlog/+", "mythicbot/modlog/123", true},
		// Routing inside the control subscription: the wildcard catches the
		// whole subtree but only the status request answers.
		{"mythicbot/control/status", "mythicbot/control/status", true},
		{"mythicbot/control/status", "mythicbot/control/restart", false},
		{"mythicbot/control/#", "mythicbot/control/status", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.topic, func(t *testing.T) {
			if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
				t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
			}
		})
	}
}
