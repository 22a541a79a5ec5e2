package forms

import (
	"fmt"

	"github.com/edusite/adminkit/pkg/models"
)

// MaxMaterialUpload is the client-side ceiling for study-material files.
const MaxMaterialUpload = 100 << 20 // 100MB

// DomainForm collects the fields of a marketing domain.
type DomainForm struct {
	Name         string
	Slug         string
	Description  string
	DisplayOrder int64
	IsActive     bool

	Image            *Attachment
	ExistingImageURL string
}

// DomainFormFrom seeds an edit-mode form from an existing record.
func DomainFormFrom(d models.Domain) DomainForm {
	return DomainForm{
		Name:             d.Name,
		Slug:             d.Slug,
		Description:      d.Description,
		DisplayOrder:     d.DisplayOrder,
		IsActive:         d.IsActive,
		ExistingImageURL: d.ImageURL,
	}
}

func (f DomainForm) Validate() error {
	var c check
	c.required("name", f.Name)
	c.required("slug", f.Slug)
	c.nonNegative("displayOrder", f.DisplayOrder)
	return c.err()
}

func (f DomainForm) Payload() *Payload {
	return NewPayload().
		Set("name", f.Name).
		Set("slug", f.Slug).
		Set("description", f.Description).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolWords).
		Attach(f.Image)
}

// CourseForm collects the fields of a course.
type CourseForm struct {
	DomainID     int64
	Name         string
	Slug         string
	Description  string
	Duration     string
	DisplayOrder int64
	IsActive     bool

	Image            *Attachment
	ExistingImageURL string
}

func CourseFormFrom(c models.Course) CourseForm {
	return CourseForm{
		DomainID:         c.DomainID,
		Name:             c.Name,
		Slug:             c.Slug,
		Description:      c.Description,
		Duration:         c.Duration,
		DisplayOrder:     c.DisplayOrder,
		IsActive:         c.IsActive,
		ExistingImageURL: c.ImageURL,
	}
}

func (f CourseForm) Validate() error {
	var c check
	c.required("name", f.Name)
	c.required("slug", f.Slug)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("displayOrder", f.DisplayOrder)
	return c.err()
}

func (f CourseForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		Set("name", f.Name).
		Set("slug", f.Slug).
		Set("description", f.Description).
		Set("duration", f.Duration).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolWords).
		Attach(f.Image)
}

// ProjectForm collects the fields of a showcase project.
type ProjectForm struct {
	DomainID     int64
	CourseID     int64
	Title        string
	Description  string
	ProjectURL   string
	DisplayOrder int64
	IsActive     bool

	Image            *Attachment
	ExistingImageURL string
}

func ProjectFormFrom(p models.Project) ProjectForm {
	return ProjectForm{
		DomainID:         p.DomainID,
		CourseID:         p.CourseID,
		Title:            p.Title,
		Description:      p.Description,
		ProjectURL:       p.ProjectURL,
		DisplayOrder:     p.DisplayOrder,
		IsActive:         p.IsActive,
		ExistingImageURL: p.ImageURL,
	}
}

func (f ProjectForm) Validate() error {
	var c check
	c.required("title", f.Title)
	c.required("description", f.Description)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("courseId", f.CourseID)
	c.nonNegative("displayOrder", f.DisplayOrder)
	c.requiredImage("image", f.Image, f.ExistingImageURL)
	return c.err()
}

func (f ProjectForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		SetInt("courseId", f.CourseID).
		Set("title", f.Title).
		Set("description", f.Description).
		Set("projectUrl", f.ProjectURL).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolWords).
		Attach(f.Image)
}

// MaterialForm collects the fields of a study material. The primary asset
// goes under the "file" field and an optional thumbnail under "image".
type MaterialForm struct {
	DomainID     int64
	CourseID     int64
	Title        string
	Description  string
	FileType     string
	DisplayOrder int64
	IsActive     bool

	File            *Attachment
	ExistingFileURL string

	Image            *Attachment
	ExistingImageURL string
}

func MaterialFormFrom(m models.StudyMaterial) MaterialForm {
	return MaterialForm{
		DomainID:         m.DomainID,
		CourseID:         m.CourseID,
		Title:            m.Title,
		Description:      m.Description,
		FileType:         m.FileType,
		DisplayOrder:     m.DisplayOrder,
		IsActive:         m.IsActive,
		ExistingFileURL:  m.FileURL,
		ExistingImageURL: m.ImageURL,
	}
}

func (f MaterialForm) Validate() error {
	var c check
	c.required("title", f.Title)
	c.required("fileType", f.FileType)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("courseId", f.CourseID)
	c.nonNegative("displayOrder", f.DisplayOrder)
	if f.File == nil && f.ExistingFileURL == "" {
		c.add("file", "a file is required")
	}
	if f.File != nil && f.File.Size > MaxMaterialUpload {
		c.add("file", fmt.Sprintf("exceeds the %dMB upload limit", MaxMaterialUpload>>20))
	}
	return c.err()
}

func (f MaterialForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		SetInt("courseId", f.CourseID).
		Set("title", f.Title).
		Set("description", f.Description).
		Set("fileType", f.FileType).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolDigits).
		Attach(f.File).
		Attach(f.Image)
}

// TestimonialForm collects the fields of a written testimonial.
type TestimonialForm struct {
	DomainID     int64
	CourseID     int64
	Name         string
	Role         string
	Company      string
	Quote        string
	Rating       int
	DisplayOrder int64
	IsActive     bool

	Image            *Attachment
	ExistingImageURL string
}

func TestimonialFormFrom(t models.Testimonial) TestimonialForm {
	return TestimonialForm{
		DomainID:         t.DomainID,
		CourseID:         t.CourseID,
		Name:             t.Name,
		Role:             t.Role,
		Company:          t.Company,
		Quote:            t.Quote,
		Rating:           t.Rating,
		DisplayOrder:     t.DisplayOrder,
		IsActive:         t.IsActive,
		ExistingImageURL: t.ImageURL,
	}
}

func (f TestimonialForm) Validate() error {
	var c check
	c.required("name", f.Name)
	c.required("quote", f.Quote)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("courseId", f.CourseID)
	c.nonNegative("displayOrder", f.DisplayOrder)
	if f.Rating < 0 || f.Rating > 5 {
		c.add("rating", "must be between 0 and 5")
	}
	c.requiredImage("image", f.Image, f.ExistingImageURL)
	return c.err()
}

func (f TestimonialForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		SetInt("courseId", f.CourseID).
		Set("name", f.Name).
		Set("role", f.Role).
		Set("company", f.Company).
		Set("quote", f.Quote).
		SetInt("rating", int64(f.Rating)).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolWords).
		Attach(f.Image)
}

// VideoForm collects the fields of a video testimonial.
type VideoForm struct {
	DomainID     int64
	CourseID     int64
	Name         string
	VideoURL     string
	DisplayOrder int64
	IsActive     bool

	Thumbnail            *Attachment
	ExistingThumbnailURL string
}

func VideoFormFrom(v models.VideoTestimonial) VideoForm {
	return VideoForm{
		DomainID:             v.DomainID,
		CourseID:             v.CourseID,
		Name:                 v.Name,
		VideoURL:             v.VideoURL,
		DisplayOrder:         v.DisplayOrder,
		IsActive:             v.IsActive,
		ExistingThumbnailURL: v.ThumbnailURL,
	}
}

func (f VideoForm) Validate() error {
	var c check
	c.required("name", f.Name)
	c.required("videoUrl", f.VideoURL)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("courseId", f.CourseID)
	c.nonNegative("displayOrder", f.DisplayOrder)
	return c.err()
}

func (f VideoForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		SetInt("courseId", f.CourseID).
		Set("name", f.Name).
		Set("videoUrl", f.VideoURL).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolDigits).
		Attach(f.Thumbnail)
}

// TrainerForm collects the trainer profile fields. The profile photo goes
// under the "mainImage" field.
type TrainerForm struct {
	DomainID        int64
	Name            string
	Headline        string
	Bio             string
	ExperienceYears int64
	LinkedInURL     string
	DisplayOrder    int64
	IsActive        bool

	MainImage            *Attachment
	ExistingMainImageURL string
}

func TrainerFormFrom(p models.TrainerProfile) TrainerForm {
	return TrainerForm{
		DomainID:             p.DomainID,
		Name:                 p.Name,
		Headline:             p.Headline,
		Bio:                  p.Bio,
		ExperienceYears:      p.ExperienceYears,
		LinkedInURL:          p.LinkedInURL,
		DisplayOrder:         p.DisplayOrder,
		IsActive:             p.IsActive,
		ExistingMainImageURL: p.MainImage,
	}
}

func (f TrainerForm) Validate() error {
	var c check
	c.required("name", f.Name)
	c.required("bio", f.Bio)
	c.nonNegative("domainId", f.DomainID)
	c.nonNegative("experienceYears", f.ExperienceYears)
	c.nonNegative("displayOrder", f.DisplayOrder)
	c.requiredImage("mainImage", f.MainImage, f.ExistingMainImageURL)
	return c.err()
}

func (f TrainerForm) Payload() *Payload {
	return NewPayload().
		SetInt("domainId", f.DomainID).
		Set("name", f.Name).
		Set("headline", f.Headline).
		Set("bio", f.Bio).
		SetInt("experienceYears", f.ExperienceYears).
		Set("linkedinUrl", f.LinkedInURL).
		SetInt("displayOrder", f.DisplayOrder).
		SetBool("isActive", f.IsActive, BoolWords).
		Attach(f.MainImage)
}
