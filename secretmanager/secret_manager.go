package secretmanager

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/doitintl/hello/records-consolidation/common"
)

// SecretName is either a bare secret id in the current project or a full
// "projects/<project>/secrets/<id>" resource name.
type SecretName string

const (
	latestVersion = "latest"
)

var ErrNoProject = errors.New("secret manager: no project configured")

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}
)

// AccessSecretLatestVersion utility function to fetch the latest version of a secret payload
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, secret, latestVersion)
}

// AccessSecretVersion fetch payload of a secret's version
func AccessSecretVersion(ctx context.Context, secret SecretName, version string) ([]byte, error) {
	name, err := secretResourceName(common.ProjectID, secret, version)
	if err != nil {
		return nil, err
	}

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	data := accessSecretVersionRes.GetPayload().GetData()

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

func secretResourceName(projectID string, secret SecretName, version string) (string, error) {
	s := strings.Trim(string(secret), "/")

	if strings.HasPrefix(s, "projects/") {
		if strings.Contains(s, "/versions/") {
			return s, nil
		}

		return fmt.Sprintf("%s/versions/%s", s, version), nil
	}

	if projectID == "" {
		return "", ErrNoProject
	}

	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, s, version), nil
}
