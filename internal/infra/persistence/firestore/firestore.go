// Package firestore is the remote storage backend. All public content lives
// under one namespaced document tree so several deployments can share a
// project without colliding.
package firestore

import (
	"context"

	"folio/config"

	cloudfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Client wraps the Firestore SDK client with the deployment namespace.
type Client struct {
	client    *cloudfirestore.Client
	namespace string
}

// Params holds dependencies for the Client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// New connects to Firestore using the configured service-account file, or
// application default credentials when no file is configured.
func New(params Params) (*Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the firestore backend")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return &Client{client: client, namespace: cfg.Namespace}, nil
}

// NewWithClient wraps an already-connected client. Used by tests against the
// Firestore emulator.
func NewWithClient(client *cloudfirestore.Client, namespace string) *Client {
	return &Client{client: client, namespace: namespace}
}

// publicData is the root document of the publicly readable content tree,
// artifacts/{namespace}/public/data.
func (c *Client) publicData() *cloudfirestore.DocumentRef {
	return c.client.Collection("artifacts").Doc(c.namespace).Collection("public").Doc("data")
}

// privateData is the root document of the admin-only tree,
// artifacts/{namespace}/private/data. Security rules deny all client reads
// here; only the server's service account touches it.
func (c *Client) privateData() *cloudfirestore.DocumentRef {
	return c.client.Collection("artifacts").Doc(c.namespace).Collection("private").Doc("data")
}
