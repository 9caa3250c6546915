package main

import (
	"net"
	"strconv"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout        = 30
	defaultAddress        = ":9090"
	defaultCacheDB        = 0
	defaultBloomBitSize   = 10000000
	defaultUserID         = 1
	defaultRateLimitRPS   = 50
	defaultRateLimitBurst = 100
)

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Pass        string
	Name        string
	AutoMigrate bool
}

// DSN builds the go-sql-driver data source name. Times are read and written in UTC.
func (d DatabaseConfig) DSN() string {
	cfg := mysqldriver.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Pass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(d.Host, d.Port)
	cfg.DBName = d.Name
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN()
}

type CacheConfig struct {
	Host string
	Port string
	Pass string
	DB   int
}

func (c CacheConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type Config struct {
	Database       DatabaseConfig
	Cache          CacheConfig
	BloomBitSize   uint64
	ContextTimeout time.Duration
	ServerAddress  string
	DefaultUserID  int64
	RateLimitRPS   float64
	RateLimitBurst int
}

// loadConfig reads the configuration through getenv, falling back to the
// defaults for anything missing or malformed.
func loadConfig(getenv func(string) string) Config {
	cfg := Config{
		Database: DatabaseConfig{
			Host:        getenv("DATABASE_HOST"),
			Port:        getenv("DATABASE_PORT"),
			User:        getenv("DATABASE_USER"),
			Pass:        getenv("DATABASE_PASS"),
			Name:        getenv("DATABASE_NAME"),
			AutoMigrate: parseBool(getenv, "DATABASE_AUTO_MIGRATE", false),
		},
		Cache: CacheConfig{
			Host: getenv("CACHE_HOST"),
			Port: getenv("CACHE_PORT"),
			Pass: getenv("CACHE_PASS"),
			DB:   parseInt(getenv, "CACHE_DB", defaultCacheDB),
		},
		ServerAddress:  getenv("SERVER_ADDRESS"),
		ContextTimeout: time.Duration(parseInt(getenv, "CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		DefaultUserID:  int64(parseInt(getenv, "DEFAULT_USER_ID", defaultUserID)),
		RateLimitBurst: parseInt(getenv, "RATE_LIMIT_BURST", defaultRateLimitBurst),
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}
	if cfg.Cache.Port == "" {
		cfg.Cache.Port = "6379"
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultAddress
	}

	cfg.BloomBitSize = defaultBloomBitSize
	if raw := getenv("BLOOM_FILTER_SIZE"); raw != "" {
		size, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || size == 0 {
			logrus.Warn("failed to parse bloom bit size, using default size")
		} else {
			cfg.BloomBitSize = size
		}
	}

	cfg.RateLimitRPS = defaultRateLimitRPS
	if raw := getenv("RATE_LIMIT_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			logrus.Warn("failed to parse RATE_LIMIT_RPS, using default")
		} else {
			cfg.RateLimitRPS = rps
		}
	}
	return cfg
}

func parseInt(getenv func(string) string, key string, def int) int {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func parseBool(getenv func(string) string, key string, def bool) bool {
	raw := getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %t", key, def)
		return def
	}
	return v
}
