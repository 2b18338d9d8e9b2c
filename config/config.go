// Package config loads the service configuration from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/doitintl/hello/records-consolidation/common"
	"github.com/doitintl/hello/records-consolidation/secretmanager"
)

const (
	envCredentials         = "GOOGLE_CREDENTIALS"
	envCredentialsSecret   = "GOOGLE_CREDENTIALS_SECRET"
	envDemographicFolderID = "DEMOGRAPHIC_FOLDER_ID"
	envClinicalFolderID    = "CLINICAL_FOLDER_ID"
	envTargetSheetName     = "TARGET_SHEET_NAME"
	envReadToken           = "READ_TOKEN"
	envSentryDSN           = "SENTRY_DSN"

	defaultDemographicFolderID = "1mxpERYY4ormmLjxYUOyEKQoePhjLetJp"
	defaultClinicalFolderID    = "1MnwxFAo15ZsOvTjBJcVEgIQcOCUbmekd"
	defaultTargetSheetName     = "Base Consolidada Prontuários"

	serviceAccountType = "service_account"
)

var (
	ErrMissingCredentials = errors.New("missing google credentials: set " + envCredentials + " or " + envCredentialsSecret)
	ErrInvalidCredentials = errors.New("google credentials are not a service account key")
)

// accessSecret is replaced in tests.
var accessSecret = secretmanager.AccessSecretLatestVersion

// Config holds everything the pipeline and the http layer need.
type Config struct {
	// Credentials is the service account JSON key.
	Credentials         []byte `validate:"required"`
	DemographicFolderID string `validate:"required"`
	ClinicalFolderID    string `validate:"required"`
	TargetSheetName     string `validate:"required"`
	// ReadToken gates the published records endpoint; empty disables it.
	ReadToken string
	SentryDSN string `validate:"omitempty,url"`
}

type serviceAccount struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Load reads the configuration from the environment. Credentials come from
// GOOGLE_CREDENTIALS, or from the Secret Manager secret named by
// GOOGLE_CREDENTIALS_SECRET.
func Load(ctx context.Context) (*Config, error) {
	credentials, err := loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Credentials:         credentials,
		DemographicFolderID: common.GetEnv(envDemographicFolderID, defaultDemographicFolderID),
		ClinicalFolderID:    common.GetEnv(envClinicalFolderID, defaultClinicalFolderID),
		TargetSheetName:     common.GetEnv(envTargetSheetName, defaultTargetSheetName),
		ReadToken:           common.GetEnv(envReadToken, ""),
		SentryDSN:           common.GetEnv(envSentryDSN, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and the credentials shape.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var sa serviceAccount
	if err := json.Unmarshal(c.Credentials, &sa); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}

	if sa.Type != serviceAccountType || sa.ClientEmail == "" || sa.PrivateKey == "" {
		return ErrInvalidCredentials
	}

	return nil
}

// ClientEmail returns the service account identity, for logging.
func (c *Config) ClientEmail() string {
	var sa serviceAccount
	if err := json.Unmarshal(c.Credentials, &sa); err != nil {
		return ""
	}

	return sa.ClientEmail
}

func loadCredentials(ctx context.Context) ([]byte, error) {
	if value := strings.TrimSpace(common.GetEnv(envCredentials, "")); value != "" {
		return []byte(value), nil
	}

	if secret := common.GetEnv(envCredentialsSecret, ""); secret != "" {
		data, err := accessSecret(ctx, secretmanager.SecretName(secret))
		if err != nil {
			return nil, fmt.Errorf("failed to access secret %s: %w", secret, err)
		}

		return data, nil
	}

	return nil, ErrMissingCredentials
}
