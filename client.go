package adminkit

import (
	"github.com/edusite/adminkit/pkg/session"
	"github.com/edusite/adminkit/pkg/transport"
)

// Client bundles the configured transport with one service per entity.
// Instances are safe for concurrent use.
type Client struct {
	transport *transport.Client
	session   *session.Store

	Auth         *AuthService
	Domains      *DomainsService
	Courses      *CoursesService
	Projects     *ProjectsService
	Materials    *MaterialsService
	Testimonials *TestimonialsService
	Videos       *VideosService
	Trainer      *TrainerService
}

// New creates a client for the admin API at baseURL. The session store
// supplies the bearer token and receives the one returned by Login.
func New(baseURL string, sess *session.Store, opts ...transport.Option) *Client {
	// A rejected token is useless; dropping it routes the console back to
	// the login page on the next gate check.
	opts = append([]transport.Option{
		transport.WithUnauthorizedHook(func() { _ = sess.Clear() }),
	}, opts...)
	tr := transport.New(baseURL, sess, opts...)

	c := &Client{
		transport: tr,
		session:   sess,
	}
	c.Auth = &AuthService{client: c}
	c.Domains = &DomainsService{crud: crud{tr: tr, base: "/domains"}}
	c.Courses = &CoursesService{crud: crud{tr: tr, base: "/courses"}}
	c.Projects = &ProjectsService{crud: crud{tr: tr, base: "/projects"}}
	c.Materials = &MaterialsService{crud: crud{tr: tr, base: "/materials"}}
	c.Testimonials = &TestimonialsService{crud: crud{tr: tr, base: "/testimonials"}}
	c.Videos = &VideosService{crud: crud{tr: tr, base: "/videos"}}
	c.Trainer = &TrainerService{crud: crud{tr: tr, base: "/trainer-about"}}
	return c
}

// Session returns the session store backing this client.
func (c *Client) Session() *session.Store {
	return c.session
}

// Transport returns the underlying HTTP client, mainly for tests.
func (c *Client) Transport() *transport.Client {
	return c.transport
}
