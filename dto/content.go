package dto

import "time"

// MenuRequest is the create/update payload for menus
type MenuRequest struct {
	Name     string `json:"name" binding:"required"`
	Path     string `json:"path" binding:"required"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// SiteConfigRequest is the create/update payload for site configs
type SiteConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Group string `json:"group"`
}

// EventRequest is the create/update payload for events
type EventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug" binding:"required"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsPublished *bool      `json:"isPublished"`
}

// LegalRequest is the create/update payload for legal documents
type LegalRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Version  int    `json:"version"`
}

// QnaRequest is the create/update payload for Q&A entries
type QnaRequest struct {
	Question    string `json:"question" binding:"required"`
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

// TimelineRequest is the create/update payload for timeline milestones
type TimelineRequest struct {
	Year        int    `json:"year" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

// BusinessModelRequest is the create/update payload for business models
type BusinessModelRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
