package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/edusite/adminkit/pkg/fetch"
	"github.com/edusite/adminkit/pkg/pages"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return fs
}

// visited reports which flags were explicitly set, so updates only touch
// the fields the operator named.
func visited(fs *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func (a *app) entity(ctx context.Context, name string, args []string) error {
	sub := "list"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		sub = args[0]
		args = args[1:]
	}

	switch name {
	case "domains":
		return a.domains(ctx, sub, args)
	case "courses":
		return a.courses(ctx, sub, args)
	case "projects":
		return a.projects(ctx, sub, args)
	case "materials":
		return a.materials(ctx, sub, args)
	case "testimonials":
		return a.testimonials(ctx, sub, args)
	case "videos":
		return a.videos(ctx, sub, args)
	case "trainer":
		return a.trainer(ctx, sub, args)
	}
	return fmt.Errorf("unknown entity %q", name)
}

// listFlags are the shared list-view flags. Flags an entity has no use
// for are accepted and ignored, matching a page that hides the control.
type listFlags struct {
	search   string
	domain   int64
	course   int64
	fileType string
	active   string
	page     int
}

func (lf *listFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&lf.search, "search", "", "substring match over the text columns")
	fs.Int64Var(&lf.domain, "domain", 0, "restrict to one domain id")
	fs.Int64Var(&lf.course, "course", 0, "restrict to one course id")
	fs.StringVar(&lf.fileType, "type", "", "restrict to one file type (materials only)")
	fs.StringVar(&lf.active, "active", "", "restrict by publish state: true or false")
	fs.IntVar(&lf.page, "page", 1, "page number")
}

func (lf *listFlags) filters() (pages.Filters, error) {
	f := pages.Filters{FileType: lf.fileType}
	if lf.domain > 0 {
		f.DomainID = &lf.domain
	}
	if lf.course > 0 {
		f.CourseID = &lf.course
	}
	if lf.active != "" {
		b, err := strconv.ParseBool(lf.active)
		if err != nil {
			return f, fmt.Errorf("-active must be true or false, got %q", lf.active)
		}
		f.Active = &b
	}
	return f, nil
}

func runList[T any](ctx context.Context, out io.Writer, ctl *pages.Controller[T], args []string, render func(io.Writer, T)) error {
	fs := newFlagSet("list")
	var lf listFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer ctl.Close()

	if err := ctl.Load(ctx); err != nil {
		return err
	}
	filters, err := lf.filters()
	if err != nil {
		return err
	}
	ctl.SetFilters(filters)
	ctl.SetSearch(lf.search)
	ctl.SetPage(lf.page)

	for _, row := range ctl.Visible() {
		render(out, row)
	}
	fmt.Fprintf(out, "page %d of %d, %d matching\n", ctl.Page(), ctl.TotalPages(), len(ctl.Filtered()))
	return nil
}

func runGet[T any](ctx context.Context, out io.Writer, get fetch.ByID[T], args []string) error {
	fs := newFlagSet("get")
	id := fs.Int64("id", 0, "record id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("get: -id is required")
	}

	rf := fetch.NewResourceFetcher(get, *id)
	defer rf.Close()

	record, err := rf.FetchDefault(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func runDelete[T any](ctx context.Context, out io.Writer, ctl *pages.Controller[T], args []string) error {
	fs := newFlagSet("delete")
	id := fs.Int64("id", 0, "record id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("delete: -id is required")
	}
	defer ctl.Close()

	if err := ctl.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(out, "deleted %d\n", *id)
	return nil
}

func runToggle[T any](ctx context.Context, out io.Writer, ctl *pages.Controller[T], args []string) error {
	fs := newFlagSet("toggle")
	id := fs.Int64("id", 0, "record id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("toggle: -id is required")
	}
	defer ctl.Close()

	if err := ctl.Load(ctx); err != nil {
		return err
	}
	if err := ctl.ToggleActive(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(out, "toggled %d\n", *id)
	return nil
}

func activeMark(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func unknownSub(entity, sub string) error {
	return fmt.Errorf("%s: unknown subcommand %q (list, get, create, update, delete, toggle)", entity, sub)
}

// submitted reports a create or update result.
func submitted(out io.Writer, verb string, id int64) {
	fmt.Fprintf(out, "%s record %d\n", verb, id)
}
