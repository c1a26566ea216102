package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "accounts",
		},
		"token": map[string]any{
			"signingKey": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "TOKEN_SIGNINGKEY", want: "token.signingKey"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("bcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.MaxPasswordLength != defaultMaxPasswordLength {
		t.Fatalf("maxPasswordLength = %d, want %d", cfg.Auth.MaxPasswordLength, defaultMaxPasswordLength)
	}
	if cfg.Token.TTL != 24*time.Hour {
		t.Fatalf("ttl = %s, want 24h", cfg.Token.TTL)
	}
	if cfg.Token.Issuer != defaultTokenIssuer {
		t.Fatalf("issuer = %q, want %q", cfg.Token.Issuer, defaultTokenIssuer)
	}
}

func TestConfig_Validate_SigningKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "missing key", key: "", wantErr: true},
		{name: "short key", key: "too-short", wantErr: true},
		{name: "sufficient key", key: "0123456789abcdef0123456789abcdef", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			cfg.Token.SigningKey = tt.key

			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
