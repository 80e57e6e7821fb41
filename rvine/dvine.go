package rvine

// NewDVine builds the R-vine matrix of a D-vine on the given variable
// order: tree t (0-based) connects every pair of variables exactly t+1
// apart in the order, conditioned on everything between them. A D-vine matrix
// is correct by construction, so it is a convenient fixture as well as
// a legitimate structure choice in its own right.
func NewDVine(order []int) (*Matrix, error) {
	d := len(order)
	if d == 0 {
		return NewMatrix(order, nil)
	}
	partners := make([][]int, d-1)
	for j := 0; j < d-1; j++ {
		col := make([]int, d-1-j)
		for k := range col {
			// tree k's edge in column j connects order[j] to the
			// variable k+1 steps further along the order.
			col[k] = order[j+k+1]
		}
		partners[j] = col
	}
	return NewMatrix(order, partners)
}
