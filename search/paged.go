package search

import "github.com/saltmail/ews/ewsxml"

const (
	OffsetBasePointBeginning OffsetBasePoint = "Beginning"
	OffsetBasePointEnd       OffsetBasePoint = "End"
)

// OffsetBasePoint specifies which end of the result set a page offset
// counts from
type OffsetBasePoint string

// String cast OffsetBasePoint to string
func (p OffsetBasePoint) String() string {
	return string(p)
}

// IsValid will validate whether the base point is supported or not
func (p OffsetBasePoint) IsValid() bool {
	switch p {
	case OffsetBasePointBeginning, OffsetBasePointEnd:
		return true
	}
	return false
}

// pagedView is the shared core of indexed paged views: a page size, an
// offset counted from a base point, and an optional sort order.
type pagedView struct {
	pageSize  int32
	offset    int32
	basePoint OffsetBasePoint
	orderBy   OrderBy
}

// PageSize returns the maximum number of results per page.
func (p *pagedView) PageSize() int32 {
	return p.pageSize
}

// SetPageSize sets the maximum number of results per page.
func (p *pagedView) SetPageSize(n int32) {
	p.pageSize = n
}

// Offset returns the index of the first result, counted from BasePoint.
func (p *pagedView) Offset() int32 {
	return p.offset
}

// SetOffset sets the index of the first result.
func (p *pagedView) SetOffset(n int32) {
	p.offset = n
}

// BasePoint returns which end of the result set the offset counts from.
func (p *pagedView) BasePoint() OffsetBasePoint {
	return p.basePoint
}

// SetBasePoint sets which end of the result set the offset counts from.
func (p *pagedView) SetBasePoint(bp OffsetBasePoint) {
	p.basePoint = bp
}

// OrderBy returns the view's sort clause for configuration.
func (p *pagedView) OrderBy() *OrderBy {
	return &p.orderBy
}

// MaxEntriesReturned reports the page size. Paged views are always
// bounded.
func (p *pagedView) MaxEntriesReturned() (int32, bool) {
	return p.pageSize, true
}

// WriteAttributesToXml writes the paging attributes onto the view's
// wrapping element.
func (p *pagedView) WriteAttributesToXml(w *ewsxml.Writer) error {
	if err := w.WriteAttributeValue("Offset", p.offset); err != nil {
		return err
	}
	return w.WriteAttributeValue("BasePoint", p.basePoint.String())
}

// WriteOrderByToXml writes the sort clause. Nothing is written for an
// empty clause.
func (p *pagedView) WriteOrderByToXml(w *ewsxml.Writer) error {
	return p.orderBy.WriteToXml(w)
}

// WriteSearchSettingsToXml writes the grouping clause, when present,
// followed by the sort clause.
func (p *pagedView) WriteSearchSettingsToXml(w *ewsxml.Writer, groupBy *Grouping) error {
	if groupBy != nil {
		if err := groupBy.WriteToXml(w); err != nil {
			return err
		}
	}
	return p.WriteOrderByToXml(w)
}
