package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS        = ""           // e.g. "example.com,example2.com"
	MYSQL_DSN          = ""           // MySQL will be used if this is set
	SQLITE_FILE        = "inkwell.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	MEDIA_DIR          = "media" // Local directory for uploaded images (ignored when S3 is configured)
	S3_BUCKET          = ""      // S3 will be used for uploaded images if this is set
	S3_REGION          = "us-east-1"
	S3_ACCESS_KEY      = ""
	S3_SECRET_KEY      = ""
	S3_PREFIX          = "" // Key prefix within the bucket
	SESSION_KEY        = "not a very secret key"
	DEBUG_MODE         = true
	PAGE_CACHE_SECONDS = 20 // How long the rendered main feed stays cached
)

func init() {
	_ = godotenv.Load()

	readEnvString("INKWELL_TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("INKWELL_MYSQL_DSN", &MYSQL_DSN)
	readEnvString("INKWELL_SQLITE_FILE", &SQLITE_FILE)
	readEnvString("INKWELL_BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("INKWELL_MEDIA_DIR", &MEDIA_DIR)
	readEnvString("INKWELL_S3_BUCKET", &S3_BUCKET)
	readEnvString("INKWELL_S3_REGION", &S3_REGION)
	readEnvString("INKWELL_S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("INKWELL_S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvString("INKWELL_S3_PREFIX", &S3_PREFIX)
	readEnvString("INKWELL_SESSION_KEY", &SESSION_KEY)
	readEnvBool("INKWELL_DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("INKWELL_PAGE_CACHE_SECONDS", &PAGE_CACHE_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
