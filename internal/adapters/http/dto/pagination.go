package dto

import "github.com/jsamuelsen/favqs-quotes/internal/domain"

// PageRequest carries the page number of a quotes list request.
// The quotes API numbers pages from 1; an absent page means the first one.
type PageRequest struct {
	Page int `form:"page" json:"page" validate:"omitempty,gte=1"`
}

// GetPage returns the page with the default applied.
func (p *PageRequest) GetPage() int {
	if p.Page <= 0 {
		return domain.DefaultPage
	}

	return p.Page
}
