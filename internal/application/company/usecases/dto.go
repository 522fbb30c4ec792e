package usecases

import (
	"leadloft/internal/domain/company"
	"leadloft/internal/shared/biztime"
)

type CompanyDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Website   string `json:"website,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toCompanyDTO(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Website:   c.Website(),
		Industry:  c.Industry(),
		Notes:     c.Notes(),
		CreatedAt: biztime.Format(c.CreatedAt()),
		UpdatedAt: biztime.Format(c.UpdatedAt()),
	}
}
