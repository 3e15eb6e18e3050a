package reddit

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Factory builds a session from credentials.
type Factory func(creds Credentials, opts ...Option) (API, error)

// Provider lazily builds one session and hands the same instance to every
// caller for the life of the process.
type Provider struct {
	creds   Credentials
	opts    []Option
	factory Factory

	once   sync.Once
	client API
	err    error
}

// NewProvider creates a provider for the given credentials. Nothing is
// constructed until the first call to Client.
func NewProvider(creds Credentials, opts ...Option) *Provider {
	return &Provider{
		creds: creds,
		opts:  opts,
		factory: func(creds Credentials, opts ...Option) (API, error) {
			client, err := NewClient(creds, opts...)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// WithFactory replaces the session constructor.
func (p *Provider) WithFactory(factory Factory) *Provider {
	p.factory = factory
	return p
}

// Client returns the shared session, building it on first use. A
// construction error is remembered and returned to every caller.
func (p *Provider) Client() (API, error) {
	p.once.Do(func() {
		p.client, p.err = p.factory(p.creds, p.opts...)
		if p.err != nil {
			logrus.Errorf("Failed to create Reddit session: %v", p.err)
			return
		}
		logrus.Infof("Reddit session initialized for u/%s", p.creds.Username)
	})
	return p.client, p.err
}
