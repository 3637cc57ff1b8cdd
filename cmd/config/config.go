package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ServerPort  string
	CORSOrigins []string

	DBDialect string
	DBDSN     string

	JWTSecret string
	TokenTTL  time.Duration

	UploadProvider string

	ImageKitPublicKey   string
	ImageKitPrivateKey  string
	ImageKitURLEndpoint string
	ImageKitTokenTTL    time.Duration

	AWSRegion string
	S3Bucket  string
	S3URLTTL  time.Duration
)

func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("cmd/config/")
	viper.AddConfigPath(".")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	viper.SetDefault("database.dialect", "sqlite3")
	viper.SetDefault("database.dsn", "videohub.db")
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("upload.provider", "imagekit")
	viper.SetDefault("upload.imagekit.token_ttl", "30m")
	viper.SetDefault("upload.s3.url_ttl", "15m")

	viper.SetEnvPrefix("videohub")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	ServerPort = viper.GetString("server.port")
	CORSOrigins = viper.GetStringSlice("server.cors_origins")

	DBDialect = viper.GetString("database.dialect")
	DBDSN = viper.GetString("database.dsn")

	JWTSecret = viper.GetString("auth.jwt_secret")
	TokenTTL = viper.GetDuration("auth.token_ttl")

	UploadProvider = viper.GetString("upload.provider")

	ImageKitPublicKey = viper.GetString("upload.imagekit.public_key")
	ImageKitPrivateKey = viper.GetString("upload.imagekit.private_key")
	ImageKitURLEndpoint = viper.GetString("upload.imagekit.url_endpoint")
	ImageKitTokenTTL = viper.GetDuration("upload.imagekit.token_ttl")

	AWSRegion = viper.GetString("upload.s3.region")
	S3Bucket = viper.GetString("upload.s3.bucket")
	S3URLTTL = viper.GetDuration("upload.s3.url_ttl")
}
