// Package ticket renders the printable boleto: pagination arithmetic for a
// single tall content block, and the gofpdf document built from it.
package ticket

// Page places the rendered content block on one output page. YOffset is the
// vertical shift applied to the block so the right slice shows.
type Page struct {
	Index   int     `json:"pagina"`
	YOffset float64 `json:"desplazamientoY"`
}

// Paginate computes how many fixed-height pages a content block needs and
// the offset to draw it at on each page. The block is shifted up by one page
// height per page; the arithmetic is iterative subtraction so that a block
// exactly n pages tall yields exactly n pages, never a trailing blank one.
func Paginate(contentHeight, pageHeight float64) []Page {
	if pageHeight <= 0 {
		return []Page{{Index: 0, YOffset: 0}}
	}

	var pages []Page
	remaining := contentHeight
	for i := 0; ; i++ {
		pages = append(pages, Page{Index: i, YOffset: -float64(i) * pageHeight})
		remaining -= pageHeight
		if remaining <= 0 {
			break
		}
	}
	return pages
}
