package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId": "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"reauthWindow": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_REAUTHWINDOW", want: "auth.reauthWindow"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
