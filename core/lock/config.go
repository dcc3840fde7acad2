package lock

// Config holds configuration for the run lock.
// An empty RedisAddr keeps the lock in-process.
type Config struct {
	RedisAddr     string `mapstructure:"redis_addr" default:""`
	RedisPassword string `mapstructure:"redis_password" default:""`
	RedisDB       int    `mapstructure:"redis_db" default:"0"`
	TTLSeconds    int    `mapstructure:"ttl_seconds" default:"900"`
}
