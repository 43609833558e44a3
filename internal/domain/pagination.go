package domain

const (
	DefaultCaseLimit = 50
	MaxCaseLimit     = 100
)

// CaseFilter narrows the public case listing. Search matches name, case
// number or last-seen location by substring.
type CaseFilter struct {
	Status   *CaseStatus
	Priority *Priority
	Search   string
	Limit    int
	Offset   int
}

func (f *CaseFilter) Validate() {
	if f.Limit < 1 {
		f.Limit = DefaultCaseLimit
	}
	if f.Limit > MaxCaseLimit {
		f.Limit = MaxCaseLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

type PageInfo struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type CaseList struct {
	Data       []MissingPerson `json:"data"`
	Pagination PageInfo        `json:"pagination"`
}

func NewCaseList(data []MissingPerson, filter CaseFilter, total int64) CaseList {
	if data == nil {
		data = []MissingPerson{}
	}
	return CaseList{
		Data: data,
		Pagination: PageInfo{
			Total:   total,
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			HasMore: int64(filter.Offset)+int64(filter.Limit) < total,
		},
	}
}
