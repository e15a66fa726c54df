package config

import (
	"os"
	"strconv"
)

type Config struct {
	StoreDriver   string // sqlite | redis | memory
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() Config {
	redisDB, _ := strconv.Atoi(get("REDIS_DB", "0"))
	return Config{
		StoreDriver:   get("STORE_DRIVER", "sqlite"),
		DBPath:        get("DB_PATH", "./data/freelancehub.db"),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
