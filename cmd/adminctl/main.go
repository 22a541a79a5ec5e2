// adminctl is the command-line console for the training-site admin API.
//
// Usage:
//
//	adminctl login -email a@b.c -password secret
//	adminctl logout
//	adminctl whoami
//	adminctl <entity> list [-search term] [-domain id] [-course id] [-active true|false] [-page n]
//	adminctl <entity> get -id n
//	adminctl <entity> create [field flags]
//	adminctl <entity> update -id n [field flags]
//	adminctl <entity> delete -id n
//	adminctl <entity> toggle -id n
//	adminctl watch
//
// Entities: domains, courses, projects, materials, testimonials, videos,
// trainer. Any other route prints the dashboard overview.
//
// Configuration comes from the environment (ADMIN_API_URL and friends);
// a .env file in the working directory is honored.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/edusite/adminkit"
	"github.com/edusite/adminkit/pkg/config"
	"github.com/edusite/adminkit/pkg/fetch"
	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/live"
	"github.com/edusite/adminkit/pkg/logger"
	"github.com/edusite/adminkit/pkg/session"
	"github.com/edusite/adminkit/pkg/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "adminctl: %v\n", err)
		os.Exit(1)
	}
}

// app carries the wired-up dependencies of one invocation.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	sess   *session.Store
	client *adminkit.Client
	out    io.Writer
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	build := logger.New().Level(cfg.LogLevel)
	if cfg.LogPretty {
		build = build.Pretty()
	}
	lg, err := build.Make()
	if err != nil {
		return err
	}
	defer lg.Close()

	sess := session.NewStore(cfg.TokenPath)
	if err := sess.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	client := adminkit.New(cfg.BaseURL, sess,
		transport.WithTimeout(cfg.RequestTimeout),
		transport.WithLogger(lg.Logger),
	)

	a := &app{cfg: cfg, log: lg.Logger, sess: sess, client: client, out: out}

	route := ""
	if len(args) > 0 {
		route = args[0]
		args = args[1:]
	}

	switch route {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami()
	case "watch":
		if err := a.gate(); err != nil {
			return err
		}
		return a.watch(ctx)
	case "domains", "courses", "projects", "materials", "testimonials", "videos", "trainer":
		if err := a.gate(); err != nil {
			return err
		}
		return a.entity(ctx, route, args)
	default:
		// Unknown or empty route lands on the overview, the same way the
		// console falls back to its root listing.
		if err := a.gate(); err != nil {
			return err
		}
		return a.dashboard(ctx)
	}
}

// gate blocks every page behind a stored session, pointing at login when
// there is none.
func (a *app) gate() error {
	if a.sess.LoggedIn() {
		return nil
	}
	return errors.New("not signed in; run: adminctl login -email <email> -password <password>")
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "admin email (required)")
	password := fs.String("password", "", "admin password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		fs.Usage()
		return errors.New("login: -email and -password are required")
	}

	admin, err := a.client.Auth.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	fmt.Fprintf(a.out, "signed in as %s <%s>\n", admin.Username, admin.Email)
	return nil
}

func (a *app) logout() error {
	if err := a.client.Auth.Logout(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *app) whoami() error {
	id, err := a.sess.Identity()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", id.Username, id.Email, id.ID)
	return nil
}

// dashboard loads the per-entity record counts in parallel. One failing
// count shows as an error line without hiding the rest.
func (a *app) dashboard(ctx context.Context) error {
	count := func(fn func(context.Context) (int, error)) fetch.Query {
		return func(ctx context.Context) (any, error) { return fn(ctx) }
	}

	group := fetch.NewQueryGroup(map[string]fetch.Query{
		"domains": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Domains.All(ctx)
			return len(rs), err
		}),
		"courses": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Courses.All(ctx)
			return len(rs), err
		}),
		"projects": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Projects.All(ctx)
			return len(rs), err
		}),
		"materials": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Materials.All(ctx)
			return len(rs), err
		}),
		"testimonials": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Testimonials.All(ctx)
			return len(rs), err
		}),
		"videos": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Videos.All(ctx)
			return len(rs), err
		}),
		"trainer": count(func(ctx context.Context) (int, error) {
			rs, err := a.client.Trainer.All(ctx)
			return len(rs), err
		}),
	})
	defer group.Close()

	group.FetchAll(ctx)

	fmt.Fprintln(a.out, "entity        records")
	for _, name := range []string{"domains", "courses", "projects", "materials", "testimonials", "videos", "trainer"} {
		if err := group.Err(name); err != nil {
			fmt.Fprintf(a.out, "%-13s error: %v\n", name, err)
			continue
		}
		n, _ := group.Result(name)
		fmt.Fprintf(a.out, "%-13s %d\n", name, n)
	}
	return ctx.Err()
}

// watch tails the change feed and prints one line per event until
// interrupted.
func (a *app) watch(ctx context.Context) error {
	if a.cfg.LiveURL == "" {
		return errors.New("watch: ADMIN_LIVE_URL is not configured")
	}

	sub := live.NewSubscriber(a.cfg.LiveURL,
		live.WithCheckInterval(a.cfg.LiveInterval),
		live.WithLogger(a.log),
		live.WithHeader("Authorization", "Bearer "+a.sess.Token()),
	)
	for _, entity := range []string{"domains", "courses", "projects", "materials", "testimonials", "videos", "trainer"} {
		entity := entity
		sub.OnChange(entity, func(ev live.Change) {
			fmt.Fprintf(a.out, "%s %s id=%d\n", ev.Entity, ev.Action, ev.ID)
		})
	}

	fmt.Fprintf(a.out, "watching %s (ctrl-c to stop)\n", a.cfg.LiveURL)
	return sub.Run(ctx)
}

// attach loads path into an upload attachment under field; empty path
// means no file.
func attach(field, path string) (*forms.Attachment, error) {
	if path == "" {
		return nil, nil
	}
	return forms.FileFromPath(field, path)
}
