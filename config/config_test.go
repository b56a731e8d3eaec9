package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, conf.DBDriver)
	assert.Equal(t, "3000", conf.ServerPort)
	assert.Equal(t, 24*time.Hour, conf.TokenTTL())
	assert.Equal(t, []string{"*"}, conf.Origins())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	env := "DB_DRIVER=mysql\nDB_HOST=db.internal\nDB_NAME=tracker\nJWT_TTL_HOURS=2\nALLOW_ORIGINS=https://a.io, https://b.io\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("SERVER_PORT", "8081")

	conf, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverMySQL, conf.DBDriver)
	assert.Equal(t, "8081", conf.ServerPort)
	assert.Equal(t, 2*time.Hour, conf.TokenTTL())
	assert.Equal(t, []string{"https://a.io", "https://b.io"}, conf.Origins())
	assert.Equal(t, "root:@tcp(db.internal:3306)/tracker?charset=utf8mb4&parseTime=True&loc=UTC", conf.GetDBConnString())
}

func TestConfigValidate(t *testing.T) {
	conf := Config{DBDriver: "postgres"}
	assert.Error(t, conf.Validate())

	conf = Config{DBDriver: DriverMongo, Environment: "production"}
	assert.Error(t, conf.Validate())

	conf.JWTSecret = "s3cret"
	assert.NoError(t, conf.Validate())
}

func TestInitRedisWithoutHost(t *testing.T) {
	require.NoError(t, InitRedis(Config{}))
	assert.Nil(t, RedisClient)
}

func TestInitLogger(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitLogger(dir, true))
	Logger.Infow("hello", "k", "v")
	_ = Logger.Sync()

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
