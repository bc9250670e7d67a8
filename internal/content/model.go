package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type groups content by the kind of support it gives
type Type string

const (
	Nutrition  Type = "nutrition"
	Exercise   Type = "exercise"
	Behavioral Type = "behavioral"
)

type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        Type      `json:"type"`
	Tags        []string  `json:"tags"`
	URL         *string   `json:"url"`
	Duration    *string   `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewItem describes a catalog entry before it is stored. Used by the seed
// file and the admin CLI.
type NewItem struct {
	Title       string   `json:"title" yaml:"title" validate:"required,notblank,max=200"`
	Description string   `json:"description" yaml:"description" validate:"required,notblank,max=2000"`
	Type        Type     `json:"type" yaml:"type" validate:"required,oneof=nutrition exercise behavioral"`
	Tags        []string `json:"tags" yaml:"tags" validate:"dive,notblank,max=50"`
	URL         *string  `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Duration    *string  `json:"duration,omitempty" yaml:"duration,omitempty" validate:"omitempty,max=50"`
}

// ParseTags splits a comma separated tag list, dropping blanks
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// hasAnyTag reports whether item shares at least one tag with tags
func hasAnyTag(item Item, tags []string) bool {
	for _, want := range tags {
		for _, have := range item.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
