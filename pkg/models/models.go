// Package models defines the content records managed through the admin API.
//
// Every record follows the same pattern: a server-assigned immutable ID, a
// DomainID scoping it to a marketing domain (0 means general/landing), an
// optional CourseID (0 means no course association), entity-specific fields,
// and an IsActive publish flag controlling public visibility.
package models

// Domain is a top-level subject area of the marketing site.
type Domain struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// Course is a single training course offered under a domain.
type Course struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domainId"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Duration     string `json:"duration,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// Project is a student or showcase project displayed on course pages.
type Project struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domainId"`
	CourseID     int64  `json:"courseId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProjectURL   string `json:"projectUrl,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// StudyMaterial is a downloadable document or video asset attached to a
// course. FileType distinguishes pdf/video/archive style assets; FileURL
// points at the uploaded file and FileSize is its size in bytes.
type StudyMaterial struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domainId"`
	CourseID     int64  `json:"courseId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	FileType     string `json:"fileType"`
	FileURL      string `json:"fileUrl,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// Testimonial is a written student testimonial.
type Testimonial struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domainId"`
	CourseID     int64  `json:"courseId"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	Company      string `json:"company,omitempty"`
	Quote        string `json:"quote"`
	Rating       int    `json:"rating,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// VideoTestimonial is a recorded student testimonial hosted externally.
type VideoTestimonial struct {
	ID           int64  `json:"id"`
	DomainID     int64  `json:"domainId"`
	CourseID     int64  `json:"courseId"`
	Name         string `json:"name"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"imageUrl,omitempty"`
	DisplayOrder int64  `json:"displayOrder"`
	IsActive     bool   `json:"isActive"`
}

// TrainerProfile is the "about the trainer" section content.
type TrainerProfile struct {
	ID              int64  `json:"id"`
	DomainID        int64  `json:"domainId"`
	Name            string `json:"name"`
	Headline        string `json:"headline"`
	Bio             string `json:"bio"`
	ExperienceYears int64  `json:"experienceYears"`
	LinkedInURL     string `json:"linkedinUrl,omitempty"`
	MainImage       string `json:"mainImage,omitempty"`
	DisplayOrder    int64  `json:"displayOrder"`
	IsActive        bool   `json:"isActive"`
}

// Admin is the operator account returned by the login endpoint.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
