package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
	"github.com/edusite/adminkit/pkg/pages"
)

// pick reports whether a flag value should be applied to the form. A nil
// set means create mode, where every flag applies; in update mode only
// the flags the operator named override the fetched record.
func pick(set map[string]bool, name string) bool {
	return set == nil || set[name]
}

func parseID(fs *flag.FlagSet, args []string, id *int64) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("%s: -id is required", fs.Name())
	}
	return nil
}

// domains

type domainFlags struct {
	name, slug, desc, image string
	order                   int64
	active                  bool
}

func (f *domainFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "domain name")
	fs.StringVar(&f.slug, "slug", "", "URL slug")
	fs.StringVar(&f.desc, "desc", "", "description")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.image, "image", "", "path to the image upload")
}

func (f *domainFlags) apply(set map[string]bool, form *forms.DomainForm) error {
	if pick(set, "name") {
		form.Name = f.name
	}
	if pick(set, "slug") {
		form.Slug = f.slug
	}
	if pick(set, "desc") {
		form.Description = f.desc
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldImage, f.image)
		if err != nil {
			return err
		}
		form.Image = att
	}
	return nil
}

func renderDomain(w io.Writer, d models.Domain) {
	fmt.Fprintf(w, "%4d  %-3s  %-24s %s\n", d.ID, activeMark(d.IsActive), d.Name, d.Slug)
}

func (a *app) domains(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.Domain] {
		return pages.NewDomains(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderDomain)
	case "get":
		return runGet(ctx, a.out, a.client.Domains.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var df domainFlags
		df.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.DomainForm
		if err := df.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var df domainFlags
		df.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Domains.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.DomainFormFrom(record)
		if err := df.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("domains", sub)
}

// courses

type courseFlags struct {
	name, slug, desc, duration, image string
	domain, order                     int64
	active                            bool
}

func (f *courseFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.StringVar(&f.name, "name", "", "course name")
	fs.StringVar(&f.slug, "slug", "", "URL slug")
	fs.StringVar(&f.desc, "desc", "", "description")
	fs.StringVar(&f.duration, "duration", "", "human-readable duration")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.image, "image", "", "path to the image upload")
}

func (f *courseFlags) apply(set map[string]bool, form *forms.CourseForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "name") {
		form.Name = f.name
	}
	if pick(set, "slug") {
		form.Slug = f.slug
	}
	if pick(set, "desc") {
		form.Description = f.desc
	}
	if pick(set, "duration") {
		form.Duration = f.duration
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldImage, f.image)
		if err != nil {
			return err
		}
		form.Image = att
	}
	return nil
}

func renderCourse(w io.Writer, c models.Course) {
	fmt.Fprintf(w, "%4d  %-3s  d%-3d %-24s %s\n", c.ID, activeMark(c.IsActive), c.DomainID, c.Name, c.Duration)
}

func (a *app) courses(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.Course] {
		return pages.NewCourses(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderCourse)
	case "get":
		return runGet(ctx, a.out, a.client.Courses.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var cf courseFlags
		cf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.CourseForm
		if err := cf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var cf courseFlags
		cf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Courses.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.CourseFormFrom(record)
		if err := cf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("courses", sub)
}

// projects

type projectFlags struct {
	title, desc, url, image string
	domain, course, order   int64
	active                  bool
}

func (f *projectFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.Int64Var(&f.course, "course", 0, "owning course id")
	fs.StringVar(&f.title, "title", "", "project title")
	fs.StringVar(&f.desc, "desc", "", "description")
	fs.StringVar(&f.url, "url", "", "live project URL")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.image, "image", "", "path to the image upload")
}

func (f *projectFlags) apply(set map[string]bool, form *forms.ProjectForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "course") {
		form.CourseID = f.course
	}
	if pick(set, "title") {
		form.Title = f.title
	}
	if pick(set, "desc") {
		form.Description = f.desc
	}
	if pick(set, "url") {
		form.ProjectURL = f.url
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldImage, f.image)
		if err != nil {
			return err
		}
		form.Image = att
	}
	return nil
}

func renderProject(w io.Writer, p models.Project) {
	fmt.Fprintf(w, "%4d  %-3s  d%-3d c%-3d %s\n", p.ID, activeMark(p.IsActive), p.DomainID, p.CourseID, p.Title)
}

func (a *app) projects(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.Project] {
		return pages.NewProjects(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderProject)
	case "get":
		return runGet(ctx, a.out, a.client.Projects.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var pf projectFlags
		pf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.ProjectForm
		if err := pf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var pf projectFlags
		pf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Projects.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.ProjectFormFrom(record)
		if err := pf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("projects", sub)
}

// materials

type materialFlags struct {
	title, desc, fileType, file, image string
	domain, course, order              int64
	active                             bool
}

func (f *materialFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.Int64Var(&f.course, "course", 0, "owning course id")
	fs.StringVar(&f.title, "title", "", "material title")
	fs.StringVar(&f.desc, "desc", "", "description")
	fs.StringVar(&f.fileType, "type", "", "file type, e.g. pdf or video")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.file, "file", "", "path to the material file")
	fs.StringVar(&f.image, "image", "", "path to the thumbnail image")
}

func (f *materialFlags) apply(set map[string]bool, form *forms.MaterialForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "course") {
		form.CourseID = f.course
	}
	if pick(set, "title") {
		form.Title = f.title
	}
	if pick(set, "desc") {
		form.Description = f.desc
	}
	if pick(set, "type") {
		form.FileType = f.fileType
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "file") && f.file != "" {
		att, err := attach(forms.FieldFile, f.file)
		if err != nil {
			return err
		}
		form.File = att
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldImage, f.image)
		if err != nil {
			return err
		}
		form.Image = att
	}
	return nil
}

func renderMaterial(w io.Writer, m models.StudyMaterial) {
	fmt.Fprintf(w, "%4d  %-3s  %-7s c%-3d %s\n", m.ID, activeMark(m.IsActive), m.FileType, m.CourseID, m.Title)
}

func (a *app) materials(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.StudyMaterial] {
		return pages.NewMaterials(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderMaterial)
	case "get":
		return runGet(ctx, a.out, a.client.Materials.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var mf materialFlags
		mf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.MaterialForm
		if err := mf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var mf materialFlags
		mf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Materials.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.MaterialFormFrom(record)
		if err := mf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("materials", sub)
}

// testimonials

type testimonialFlags struct {
	name, role, company, quote, image string
	domain, course, order             int64
	rating                            int
	active                            bool
}

func (f *testimonialFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.Int64Var(&f.course, "course", 0, "owning course id")
	fs.StringVar(&f.name, "name", "", "student name")
	fs.StringVar(&f.role, "role", "", "student role")
	fs.StringVar(&f.company, "company", "", "student company")
	fs.StringVar(&f.quote, "quote", "", "testimonial text")
	fs.IntVar(&f.rating, "rating", 0, "star rating 0-5")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.image, "image", "", "path to the photo upload")
}

func (f *testimonialFlags) apply(set map[string]bool, form *forms.TestimonialForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "course") {
		form.CourseID = f.course
	}
	if pick(set, "name") {
		form.Name = f.name
	}
	if pick(set, "role") {
		form.Role = f.role
	}
	if pick(set, "company") {
		form.Company = f.company
	}
	if pick(set, "quote") {
		form.Quote = f.quote
	}
	if pick(set, "rating") {
		form.Rating = f.rating
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldImage, f.image)
		if err != nil {
			return err
		}
		form.Image = att
	}
	return nil
}

func renderTestimonial(w io.Writer, t models.Testimonial) {
	fmt.Fprintf(w, "%4d  %-3s  %d* %-20s %s\n", t.ID, activeMark(t.IsActive), t.Rating, t.Name, t.Company)
}

func (a *app) testimonials(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.Testimonial] {
		return pages.NewTestimonials(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderTestimonial)
	case "get":
		return runGet(ctx, a.out, a.client.Testimonials.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var tf testimonialFlags
		tf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.TestimonialForm
		if err := tf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var tf testimonialFlags
		tf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Testimonials.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.TestimonialFormFrom(record)
		if err := tf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("testimonials", sub)
}

// videos

type videoFlags struct {
	name, url, thumb      string
	domain, course, order int64
	active                bool
}

func (f *videoFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.Int64Var(&f.course, "course", 0, "owning course id")
	fs.StringVar(&f.name, "name", "", "student name")
	fs.StringVar(&f.url, "url", "", "hosted video URL")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.thumb, "thumbnail", "", "path to the thumbnail upload")
}

func (f *videoFlags) apply(set map[string]bool, form *forms.VideoForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "course") {
		form.CourseID = f.course
	}
	if pick(set, "name") {
		form.Name = f.name
	}
	if pick(set, "url") {
		form.VideoURL = f.url
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "thumbnail") && f.thumb != "" {
		att, err := attach(forms.FieldImage, f.thumb)
		if err != nil {
			return err
		}
		form.Thumbnail = att
	}
	return nil
}

func renderVideo(w io.Writer, v models.VideoTestimonial) {
	fmt.Fprintf(w, "%4d  %-3s  %-20s %s\n", v.ID, activeMark(v.IsActive), v.Name, v.VideoURL)
}

func (a *app) videos(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.VideoTestimonial] {
		return pages.NewVideos(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderVideo)
	case "get":
		return runGet(ctx, a.out, a.client.Videos.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var vf videoFlags
		vf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.VideoForm
		if err := vf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var vf videoFlags
		vf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Videos.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.VideoFormFrom(record)
		if err := vf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("videos", sub)
}

// trainer

type trainerFlags struct {
	name, headline, bio, linkedin, image string
	domain, years, order                 int64
	active                               bool
}

func (f *trainerFlags) register(fs *flag.FlagSet) {
	fs.Int64Var(&f.domain, "domain", 0, "owning domain id")
	fs.StringVar(&f.name, "name", "", "trainer name")
	fs.StringVar(&f.headline, "headline", "", "one-line headline")
	fs.StringVar(&f.bio, "bio", "", "biography text")
	fs.Int64Var(&f.years, "years", 0, "years of experience")
	fs.StringVar(&f.linkedin, "linkedin", "", "LinkedIn profile URL")
	fs.Int64Var(&f.order, "order", 0, "display order")
	fs.BoolVar(&f.active, "active", false, "publish immediately")
	fs.StringVar(&f.image, "image", "", "path to the profile photo")
}

func (f *trainerFlags) apply(set map[string]bool, form *forms.TrainerForm) error {
	if pick(set, "domain") {
		form.DomainID = f.domain
	}
	if pick(set, "name") {
		form.Name = f.name
	}
	if pick(set, "headline") {
		form.Headline = f.headline
	}
	if pick(set, "bio") {
		form.Bio = f.bio
	}
	if pick(set, "years") {
		form.ExperienceYears = f.years
	}
	if pick(set, "linkedin") {
		form.LinkedInURL = f.linkedin
	}
	if pick(set, "order") {
		form.DisplayOrder = f.order
	}
	if pick(set, "active") {
		form.IsActive = f.active
	}
	if pick(set, "image") && f.image != "" {
		att, err := attach(forms.FieldMainImage, f.image)
		if err != nil {
			return err
		}
		form.MainImage = att
	}
	return nil
}

func renderTrainer(w io.Writer, p models.TrainerProfile) {
	fmt.Fprintf(w, "%4d  %-3s  %-20s %s\n", p.ID, activeMark(p.IsActive), p.Name, p.Headline)
}

func (a *app) trainer(ctx context.Context, sub string, args []string) error {
	page := func() *pages.Controller[models.TrainerProfile] {
		return pages.NewTrainer(a.client, a.cfg.PageSize, a.log)
	}
	switch sub {
	case "list":
		return runList(ctx, a.out, page(), args, renderTrainer)
	case "get":
		return runGet(ctx, a.out, a.client.Trainer.Get, args)
	case "delete":
		return runDelete(ctx, a.out, page(), args)
	case "toggle":
		return runToggle(ctx, a.out, page(), args)
	case "create":
		fs := newFlagSet("create")
		var tf trainerFlags
		tf.register(fs)
		if err := fs.Parse(args); err != nil {
			return err
		}
		var form forms.TrainerForm
		if err := tf.apply(nil, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		created, err := ctl.Create(ctx, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "created", created.ID)
		return nil
	case "update":
		fs := newFlagSet("update")
		id := fs.Int64("id", 0, "record id (required)")
		var tf trainerFlags
		tf.register(fs)
		if err := parseID(fs, args, id); err != nil {
			return err
		}
		record, err := a.client.Trainer.Get(ctx, *id)
		if err != nil {
			return err
		}
		form := forms.TrainerFormFrom(record)
		if err := tf.apply(visited(fs), &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			return err
		}
		ctl := page()
		defer ctl.Close()
		updated, err := ctl.Update(ctx, *id, form.Payload())
		if err != nil {
			return err
		}
		submitted(a.out, "updated", updated.ID)
		return nil
	}
	return unknownSub("trainer", sub)
}
