package config

import (
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			login:    "user",
			password: "secret",
			wantErr:  false,
		},
		{
			name:     "missing login",
			login:    "",
			password: "secret",
			wantErr:  true,
		},
		{
			name:     "missing password",
			login:    "user",
			password: "",
			wantErr:  true,
		},
		{
			name:     "placeholder login",
			login:    "your-login-here",
			password: "secret",
			wantErr:  true,
		},
		{
			name:     "placeholder password",
			login:    "user",
			password: "your-password-here",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				MyShows: MyShowsConfig{
					Login:    tt.login,
					Password: tt.password,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "info console", level: "info", format: "console", wantErr: false},
		{name: "debug json", level: "debug", format: "json", wantErr: false},
		{name: "trace console", level: "trace", format: "console", wantErr: false},
		{name: "invalid level", level: "verbose", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "logfmt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				MyShows: MyShowsConfig{
					Login:    "user",
					Password: "secret",
				},
				Logging: LoggingConfig{
					Level:  tt.level,
					Format: tt.format,
				},
			}

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MYSHOWS_LOGIN", "envuser")
	t.Setenv("MYSHOWS_PASSWORD", "envsecret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MyShows.Login != "envuser" {
		t.Errorf("login = %q, want %q", cfg.MyShows.Login, "envuser")
	}
	if cfg.MyShows.Password != "envsecret" {
		t.Errorf("password = %q, want %q", cfg.MyShows.Password, "envsecret")
	}
	if cfg.MyShows.RPCURL == "" {
		t.Error("rpc_url default not applied")
	}
}

func TestLoadMissingCredentialsIsFatal(t *testing.T) {
	t.Setenv("MYSHOWS_LOGIN", "")
	t.Setenv("MYSHOWS_PASSWORD", "")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() expected error for missing credentials")
	}
}
