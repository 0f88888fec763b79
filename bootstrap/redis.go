package bootstrap

import (
	"fmt"

	"casamento/pkg/config"
	"casamento/pkg/redis"
)

// SetupRedis connects the main and session Redis databases.
func SetupRedis() {
	redis.InitRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
		config.GetInt("redis.session_database"),
	)
}
