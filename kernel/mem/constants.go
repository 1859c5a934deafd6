package mem

const (
	// PageShift is equal to log2(PageSize). This constant is used when
	// we need to convert a physical address to a page number (shift right
	// by PageShift) and vice-versa.
	PageShift = 12

	// PageSize defines the page size in bytes. The loader places kernel
	// images in terms of 4K pages regardless of any larger page sizes the
	// loaded kernel may later configure.
	PageSize = Size(1 << PageShift)
)
