package domain

// Cheese is a disc of a given relative size. Cheeses compare by size.
type Cheese struct {
	Size int
}

func NewCheese(size int) Cheese {
	return Cheese{Size: size}
}

func (c Cheese) Equal(other Cheese) bool {
	return c.Size == other.Size
}
