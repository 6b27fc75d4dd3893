package dto

import seodomain "seoprofil-backend/internal/seo/domain"

type AnalyzeRequest struct {
	Domain string `json:"domain" binding:"required"`
}

type AnalyzeResponse struct {
	Message string             `json:"message"`
	Result  *SEOResultResponse `json:"result"`
}

type SEOResultResponse struct {
	ID               string `json:"id"`
	Domain           string `json:"domain"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Keywords         string `json:"keywords"`
	OpeningHours     string `json:"opening_hours"`
	CompanyInfo      string `json:"company_info"`
	RawResponse      string `json:"raw_response"`
	CreatedAt        string `json:"created_at"`
	UserID           string `json:"user_id"`
	Username         string `json:"username,omitempty"`
}

type ResultListResponse struct {
	Results     []*SEOResultResponse `json:"results"`
	Total       int64                `json:"total"`
	Pages       int                  `json:"pages"`
	CurrentPage int                  `json:"current_page"`
	PerPage     int                  `json:"per_page"`
}

func ToSEOResultResponse(r *seodomain.SEOResult) *SEOResultResponse {
	resp := &SEOResultResponse{
		ID:               r.ID,
		Domain:           r.Domain,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Keywords:         r.Keywords,
		OpeningHours:     r.OpeningHours,
		CompanyInfo:      r.CompanyInfo,
		RawResponse:      r.RawResponse,
		CreatedAt:        r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UserID:           r.UserID,
	}
	if r.User != nil {
		resp.Username = r.User.Username
	}
	return resp
}
