package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestMergeConfig() {
	envConf := &Config{DatabaseDSN: "postgres://env", RateLimitBurst: 5}
	flagConf := &Config{
		RunAddress:         "localhost:8080",
		DatabaseDSN:        "postgres://flag",
		JWTSecret:          "flag-secret",
		RateLimitBurst:     20,
		RateLimitPerMinute: 60,
		RateLimitKeyPrefix: "ledger:ratelimit:",
	}

	merged := mergeConfig(envConf, flagConf)
	s.Equal("postgres://env", merged.DatabaseDSN)
	s.Equal("localhost:8080", merged.RunAddress)
	s.Equal("flag-secret", merged.JWTSecret)
	s.Equal(5, merged.RateLimitBurst)
	s.Equal(60, merged.RateLimitPerMinute)
	s.Equal("ledger:ratelimit:", merged.RateLimitKeyPrefix)

	envConf.RateLimitKeyPrefix = "staging:rl:"
	s.Equal("staging:rl:", mergeConfig(envConf, flagConf).RateLimitKeyPrefix)
}

func (s *ConfigTestSuite) TestValidate() {
	cases := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{name: "ok", conf: Config{DatabaseDSN: "dsn", JWTSecret: "s", RateLimitBurst: 1, RateLimitPerMinute: 1}},
		{name: "no dsn", conf: Config{JWTSecret: "s", RateLimitBurst: 1, RateLimitPerMinute: 1}, wantErr: true},
		{name: "no secret", conf: Config{DatabaseDSN: "dsn", RateLimitBurst: 1, RateLimitPerMinute: 1}, wantErr: true},
		{name: "bad rate", conf: Config{DatabaseDSN: "dsn", JWTSecret: "s"}, wantErr: true},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := t.conf.validate()
			if t.wantErr {
				s.Require().Error(err)
				return
			}
			s.Require().NoError(err)
		})
	}
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(path, []byte("LEDGER_TEST_KEY=from-dotenv\n"), 0o600))
	s.T().Setenv("LEDGER_TEST_KEY", "")
	s.Require().NoError(os.Unsetenv("LEDGER_TEST_KEY"))

	s.Require().NoError(loadDotEnv(path))
	s.Equal("from-dotenv", os.Getenv("LEDGER_TEST_KEY"))

	s.Require().NoError(loadDotEnv(filepath.Join(dir, "missing.env")))
}

func (s *ConfigTestSuite) TestStringHidesSecrets() {
	conf := Config{DatabaseDSN: "postgres://user:pass@db", JWTSecret: "top-secret", RedisPassword: "redis-pass"}
	str := conf.String()
	s.NotContains(str, "pass@db")
	s.NotContains(str, "top-secret")
	s.NotContains(str, "redis-pass")
}
