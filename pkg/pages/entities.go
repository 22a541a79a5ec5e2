package pages

import (
	"github.com/rs/zerolog"

	"github.com/edusite/adminkit"
	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/models"
)

// NewDomains builds the domains page.
func NewDomains(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.Domain] {
	return NewController[models.Domain](c.Domains, Descriptor[models.Domain]{
		ID:         func(d models.Domain) int64 { return d.ID },
		SearchText: func(d models.Domain) []string { return []string{d.Name, d.Slug} },
		IsActive:   func(d models.Domain) bool { return d.IsActive },
		SetActive:  func(d *models.Domain, v bool) { d.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}, pageSize, logger)
}

// NewCourses builds the courses page.
func NewCourses(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.Course] {
	return NewController[models.Course](c.Courses, Descriptor[models.Course]{
		ID:         func(c models.Course) int64 { return c.ID },
		SearchText: func(c models.Course) []string { return []string{c.Name, c.Slug} },
		DomainID:   func(c models.Course) int64 { return c.DomainID },
		IsActive:   func(c models.Course) bool { return c.IsActive },
		SetActive:  func(c *models.Course, v bool) { c.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}, pageSize, logger)
}

// NewProjects builds the projects page.
func NewProjects(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.Project] {
	return NewController[models.Project](c.Projects, Descriptor[models.Project]{
		ID:         func(p models.Project) int64 { return p.ID },
		SearchText: func(p models.Project) []string { return []string{p.Title, p.Description} },
		DomainID:   func(p models.Project) int64 { return p.DomainID },
		CourseID:   func(p models.Project) int64 { return p.CourseID },
		IsActive:   func(p models.Project) bool { return p.IsActive },
		SetActive:  func(p *models.Project, v bool) { p.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}, pageSize, logger)
}

// NewMaterials builds the study-materials page. It is the one page with a
// file-type filter, and its backend expects "1"/"0" publish flags.
func NewMaterials(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.StudyMaterial] {
	return NewController[models.StudyMaterial](c.Materials, Descriptor[models.StudyMaterial]{
		ID:         func(m models.StudyMaterial) int64 { return m.ID },
		SearchText: func(m models.StudyMaterial) []string { return []string{m.Title, m.Description} },
		DomainID:   func(m models.StudyMaterial) int64 { return m.DomainID },
		CourseID:   func(m models.StudyMaterial) int64 { return m.CourseID },
		FileType:   func(m models.StudyMaterial) string { return m.FileType },
		IsActive:   func(m models.StudyMaterial) bool { return m.IsActive },
		SetActive:  func(m *models.StudyMaterial, v bool) { m.IsActive = v },
		BoolStyle:  forms.BoolDigits,
	}, pageSize, logger)
}

// NewTestimonials builds the testimonials page.
func NewTestimonials(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.Testimonial] {
	return NewController[models.Testimonial](c.Testimonials, Descriptor[models.Testimonial]{
		ID:         func(t models.Testimonial) int64 { return t.ID },
		SearchText: func(t models.Testimonial) []string { return []string{t.Name, t.Company, t.Quote} },
		DomainID:   func(t models.Testimonial) int64 { return t.DomainID },
		CourseID:   func(t models.Testimonial) int64 { return t.CourseID },
		IsActive:   func(t models.Testimonial) bool { return t.IsActive },
		SetActive:  func(t *models.Testimonial, v bool) { t.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}, pageSize, logger)
}

// NewVideos builds the video-testimonials page.
func NewVideos(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.VideoTestimonial] {
	return NewController[models.VideoTestimonial](c.Videos, Descriptor[models.VideoTestimonial]{
		ID:         func(v models.VideoTestimonial) int64 { return v.ID },
		SearchText: func(v models.VideoTestimonial) []string { return []string{v.Name} },
		DomainID:   func(v models.VideoTestimonial) int64 { return v.DomainID },
		CourseID:   func(v models.VideoTestimonial) int64 { return v.CourseID },
		IsActive:   func(v models.VideoTestimonial) bool { return v.IsActive },
		SetActive:  func(v *models.VideoTestimonial, b bool) { v.IsActive = b },
		BoolStyle:  forms.BoolDigits,
	}, pageSize, logger)
}

// NewTrainer builds the trainer-profile page.
func NewTrainer(c *adminkit.Client, pageSize int, logger zerolog.Logger) *Controller[models.TrainerProfile] {
	return NewController[models.TrainerProfile](c.Trainer, Descriptor[models.TrainerProfile]{
		ID:         func(p models.TrainerProfile) int64 { return p.ID },
		SearchText: func(p models.TrainerProfile) []string { return []string{p.Name, p.Headline} },
		DomainID:   func(p models.TrainerProfile) int64 { return p.DomainID },
		IsActive:   func(p models.TrainerProfile) bool { return p.IsActive },
		SetActive:  func(p *models.TrainerProfile, v bool) { p.IsActive = v },
		BoolStyle:  forms.BoolWords,
	}, pageSize, logger)
}
