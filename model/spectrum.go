package model

// SectionWidth returns the number of columns in each spectrum section.
// Columns past SectionWidth()*Sections() belong to no section; a board narrower
// than its section count has zero-width sections and every count is 0.
func (b *Board) SectionWidth() int {
	return b.width / len(b.pitches)
}

// Sections returns the number of spectrum sections
func (b *Board) Sections() int {
	return len(b.pitches)
}

// SectionCounts returns the number of live cells in each spectrum section
func (b *Board) SectionCounts() []int {
	var (
		sectionWidth = b.SectionWidth()
		counts       = make([]int, len(b.pitches))
	)

	for sec := range counts {
		for col := sec * sectionWidth; col < (sec+1)*sectionWidth; col++ {
			for row := range b.height {
				if b.cells[row*b.width+col] {
					counts[sec]++
				}
			}
		}
	}
	return counts
}

// ActivitySpectrum returns the pitch and index of the section with the most live cells.
// Ties go to the leftmost section, so an empty board yields section 0.
func (b *Board) ActivitySpectrum() (pitch float64, section int) {
	best := 0
	for sec, count := range b.SectionCounts() {
		if count > best {
			best = count
			section = sec
		}
	}
	return b.pitches[section], section
}
