package common

import (
	"os"

	"github.com/gin-gonic/gin"
)

var (
	ProjectID string

	// Service and Revision identify the deployment when running on Cloud Run.
	Service  string
	Revision string

	// Production flag indicating if app is running in release mode against a cloud project
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const defaultService = "records-consolidation"

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Service = GetEnv("K_SERVICE", defaultService)
	Revision = GetEnv("K_REVISION", "localhost")
	Production = !IsLocalhost && ProjectID != ""
}

func init() {
	initEnvVariables()
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
