// Package paramstore reads deployment parameters and secrets from AWS SSM
// Parameter Store.
package paramstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// ErrNotFound marks a parameter that does not exist or holds no usable value.
var ErrNotFound = errors.New("paramstore: parameter not found")

// ssmAPI is the part of *ssm.Client this package uses.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Getter is what consumers depend on, so they can be tested without AWS.
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type Client struct {
	api    ssmAPI
	prefix string
}

// New returns a Client. Names passed to GetParameter that do not start with
// "/" are resolved under prefix.
func New(api ssmAPI, prefix string) (*Client, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	return &Client{api: api, prefix: strings.TrimRight(strings.TrimSpace(prefix), "/")}, nil
}

// Name returns the fully qualified parameter name.
func (c *Client) Name(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "/") || c.prefix == "" {
		return name
	}
	return c.prefix + "/" + name
}

func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	if c.api == nil {
		return "", errors.New("paramstore: client not initialized")
	}
	name = c.Name(name)
	if name == "" {
		return "", errors.New("paramstore: name is required")
	}

	withDecryption := true
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &withDecryption,
	})
	var missing *types.ParameterNotFound
	if errors.As(err, &missing) {
		return "", fmt.Errorf("paramstore: %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("paramstore: %q missing value: %w", name, ErrNotFound)
	}
	return *out.Parameter.Value, nil
}

type tokenPayload struct {
	Token string `json:"token"`
}

// Token reads a parameter holding {"token": "..."}. An empty token is
// reported as ErrNotFound.
func Token(ctx context.Context, g Getter, name string) (string, error) {
	if g == nil {
		return "", errors.New("paramstore: getter is nil")
	}
	raw, err := g.GetParameter(ctx, name)
	if err != nil {
		return "", err
	}
	var tp tokenPayload
	if err := json.Unmarshal([]byte(raw), &tp); err != nil {
		return "", fmt.Errorf("paramstore: unmarshal %q as token JSON: %w", name, err)
	}
	if strings.TrimSpace(tp.Token) == "" {
		return "", fmt.Errorf("paramstore: %q has an empty token: %w", name, ErrNotFound)
	}
	return strings.TrimSpace(tp.Token), nil
}
