// Package secrets loads the directory from the configured source.
package secrets

import (
	"context"
	"errors"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"

	"github.com/carson-networks/purchase-forwarder/internal/config"
	"github.com/carson-networks/purchase-forwarder/internal/directory"
)

// ErrNoSource is returned when no directory source is configured.
var ErrNoSource = errors.New("no directory source: set YNAB_SECRETS, DIRECTORY_FILE or GCP_PROJECT_ID")

type versionAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
}

// SecretManager reads secret payloads from Google Secret Manager.
type SecretManager struct {
	client versionAccessor
	close  func() error
}

// NewSecretManager connects using Application Default Credentials.
func NewSecretManager(ctx context.Context) (*SecretManager, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create secret manager client: %w", err)
	}
	return &SecretManager{client: client, close: client.Close}, nil
}

// Close releases the underlying client.
func (s *SecretManager) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Access returns the payload of projects/<project>/secrets/<secret>/versions/<version>.
func (s *SecretManager) Access(ctx context.Context, projectID, secretID, version string) ([]byte, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secretID, version)

	resp, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("access secret %s: %w", name, err)
	}
	return resp.GetPayload().GetData(), nil
}

// Store is a source of secret payloads.
type Store interface {
	Access(ctx context.Context, projectID, secretID, version string) ([]byte, error)
	Close() error
}

// StoreFactory opens a Store on demand.
type StoreFactory func(ctx context.Context) (Store, error)

// DefaultStore dials Secret Manager.
func DefaultStore(ctx context.Context) (Store, error) {
	sm, err := NewSecretManager(ctx)
	if err != nil {
		return nil, err
	}
	return sm, nil
}

// LoadDirectory resolves the directory in order of precedence: the raw
// YNAB_SECRETS value, then DIRECTORY_FILE, then Secret Manager. The store is
// only opened when neither override is set.
func LoadDirectory(ctx context.Context, env *config.Config, newStore StoreFactory) (*directory.Directory, error) {
	switch {
	case env.YNABSecrets != "":
		return directory.Parse([]byte(env.YNABSecrets))
	case env.DirectoryFile != "":
		return directory.LoadFile(env.DirectoryFile)
	case env.GCPProjectID == "":
		return nil, ErrNoSource
	}

	store, err := newStore(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	raw, err := store.Access(ctx, env.GCPProjectID, env.YNABSecretID, env.YNABSecretVersion)
	if err != nil {
		return nil, err
	}
	return directory.Parse(raw)
}
