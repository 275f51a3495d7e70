package resolvers

func defaultCurrentPage(p *int32) int {
	if p != nil && *p > 0 {
		return int(*p)
	}
	return 1
}
