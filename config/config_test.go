package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"accessTokenTtlMillis": 0,
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_ACCESSTOKENTTLMILLIS", want: "jwt.accessTokenTtlMillis"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
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

func TestApplyDefaults_TokenLifetimes(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.JWT.AccessTokenTTLMillis != defaultAccessTokenTTLMillis {
		t.Fatalf("access TTL = %d, want %d", cfg.JWT.AccessTokenTTLMillis, defaultAccessTokenTTLMillis)
	}
	if cfg.JWT.RefreshTokenTTLMillis != defaultRefreshTokenTTLMillis {
		t.Fatalf("refresh TTL = %d, want %d", cfg.JWT.RefreshTokenTTLMillis, defaultRefreshTokenTTLMillis)
	}
	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("bcrypt cost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{JWT: &JWTConfig{
		Secret:                "s",
		AccessTokenTTLMillis:  1000,
		RefreshTokenTTLMillis: 2000,
	}}
	applyDefaults(cfg)

	if cfg.JWT.AccessTokenTTLMillis != 1000 || cfg.JWT.RefreshTokenTTLMillis != 2000 {
		t.Fatalf("explicit TTLs were overwritten: %+v", cfg.JWT)
	}
}
