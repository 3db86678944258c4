package guildconfig

import "testing"

func TestParseWarnAction(t *testing.T) {
	valid := map[string]WarnAction{
		"none":    ActionNone,
		"timeout": ActionTimeout,
		"KICK":    ActionKick,
		" Ban ":   ActionBan,
	}
	for input, want := range valid {
		got, ok := ParseWarnAction(input)
		if !ok {
			t.Errorf("ParseWarnAction(%q) rejected, want %v", input, want)
			continue
		}
		if got != want {
			t.Errorf("ParseWarnAction(%q) = %v, want %v", input, got, want)
		}
	}

	for _, input := range []string{"", "mute", "banhammer", "time out"} {
		if got, ok := ParseWarnAction(input); ok {
			t.Errorf("ParseWarnAction(%q) = %v, want rejection", input, got)
		}
	}
}

func TestRenderTemplate(t *testing.T) {
	data := TemplateData{
		UserMention: "<@42>",
		UserName:    "Ximena",
		UserID:      "42",
		ServerName:  "Mythic",
		MemberCount: 128,
	}

	tests := []struct {
		tmpl string
		want string
	}{
		{DefaultWelcomeMessage, "Welcome <@42> to Mythic!"},
		{DefaultLeaveMessage, "Ximena has left Mythic."},
		{"{user} = {user.name} ({user.id}), miembro {member_count}", "<@42> = Ximena (42), miembro 128"},
		{"sin placeholders", "sin placeholders"},
		{"{unknown} queda igual", "{unknown} queda igual"},
	}

	for _, tt := range tests {
		if got := RenderTemplate(tt.tmpl, data); got != tt.want {
			t.Errorf("RenderTemplate(%q) = %q, want %q", tt.tmpl, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WarnThreshold != 3 {
		t.Errorf("WarnThreshold = %d, want 3", cfg.WarnThreshold)
	}
	if cfg.WarnAction != ActionTimeout {
		t.Errorf("WarnAction = %v, want timeout", cfg.WarnAction)
	}
	if cfg.WarnTimeoutDuration != "1h" {
		t.Errorf("WarnTimeoutDuration = %q, want 1h", cfg.WarnTimeoutDuration)
	}
	if cfg.Warnings == nil || len(cfg.Warnings) != 0 {
		t.Errorf("Warnings = %v, want empty map", cfg.Warnings)
	}
	if cfg.LogChannel != "" || cfg.VerifiedRole != "" {
		t.Error("channel/role settings must default to unset")
	}
}
