package world

// Octant multipliers for recursive shadowcasting.
var fovOctants = [8][4]int{
	{1, 0, 0, 1}, {0, 1, 1, 0}, {0, -1, 1, 0}, {-1, 0, 0, 1},
	{-1, 0, 0, -1}, {0, -1, -1, 0}, {0, 1, -1, 0}, {1, 0, 0, -1},
}

// ComputeFOV rewrites the Visible grid with the field of view from
// (originX, originY) out to radius, then folds it into Explored.
// Explored never shrinks.
func (m *GameMap) ComputeFOV(originX, originY, radius int) {
	for y := range m.Visible {
		for x := range m.Visible[y] {
			m.Visible[y][x] = false
		}
	}
	m.setVisible(originX, originY)
	for _, oct := range fovOctants {
		m.castLight(originX, originY, radius, 1, 1.0, 0.0, oct)
	}
	for y := range m.Visible {
		for x := range m.Visible[y] {
			if m.Visible[y][x] {
				m.Explored[y][x] = true
			}
		}
	}
}

func (m *GameMap) setVisible(x, y int) {
	if m.InBounds(x, y) {
		m.Visible[y][x] = true
	}
}

func (m *GameMap) castLight(cx, cy, radius, row int, start, end float64, oct [4]int) {
	if start < end {
		return
	}
	radius2 := radius * radius
	for dist := row; dist <= radius; dist++ {
		blocked := false
		newStart := start
		for dx, dy := -dist, -dist; dx <= 0; dx++ {
			x := cx + dx*oct[0] + dy*oct[1]
			y := cy + dx*oct[2] + dy*oct[3]
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}
			if dx*dx+dy*dy <= radius2 {
				m.setVisible(x, y)
			}
			opaque := !m.TileAt(x, y).Transparent
			if blocked {
				if opaque {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && dist < radius {
				blocked = true
				m.castLight(cx, cy, radius, dist+1, start, leftSlope, oct)
				newStart = rightSlope
			}
		}
		if blocked {
			break
		}
	}
}
