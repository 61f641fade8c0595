package config

// Config represents the complete configuration structure
type Config struct {
	MyShows MyShowsConfig `mapstructure:"myshows"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MyShowsConfig holds myshows.me credentials and endpoint overrides
type MyShowsConfig struct {
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
	AuthURL  string `mapstructure:"auth_url"`
	RPCURL   string `mapstructure:"rpc_url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
