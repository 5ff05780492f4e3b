package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func flagValue(name string) (interface{}, bool) {
	for _, f := range stealthFlags {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func TestStealthFlagsRequiredSwitches(t *testing.T) {
	tests := []struct {
		name string
		want interface{}
	}{
		{"ignore-certificate-errors", true},
		{"ignore-ssl-errors", true},
		{"disable-blink-features", "AutomationControlled"},
		{"enable-automation", false},
		{"start-maximized", true},
		{"disable-gpu", true},
		{"no-sandbox", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flagValue(tt.name)
			assert.True(t, ok, "flag %s not set", tt.name)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStealthFlagsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range stealthFlags {
		assert.False(t, seen[f.Name], "duplicate flag %s", f.Name)
		seen[f.Name] = true
	}
}

func TestStealthOptsHeadlessAddsFlag(t *testing.T) {
	windowed := StealthOpts(false)
	headless := StealthOpts(true)

	assert.Len(t, windowed, len(stealthFlags)+2)
	assert.Len(t, headless, len(windowed)+1)
}

func TestHideWebDriverScriptMasksNavigator(t *testing.T) {
	assert.Contains(t, hideAutomationJS, "'webdriver'")
	assert.NotNil(t, HideWebDriver())
}
