package sprig

import "math"

// affine is a 2D transform laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
type affine [6]float64

var identityTransform = affine{1, 0, 0, 1, 0, 0}

// localAffine places n in its parent's space. The pivot is moved to the
// origin first, then scale and rotation apply, then the X, Y offset.
func localAffine(n *Node) affine {
	sin, cos := math.Sincos(n.Rotation)
	a, b := cos*n.ScaleX, sin*n.ScaleX
	c, d := -sin*n.ScaleY, cos*n.ScaleY
	return affine{
		a, b, c, d,
		n.X - a*n.PivotX - c*n.PivotY,
		n.Y - b*n.PivotX - d*n.PivotY,
	}
}

// compose returns m applied after inner.
func (m affine) compose(inner affine) affine {
	return affine{
		m[0]*inner[0] + m[2]*inner[1],
		m[1]*inner[0] + m[3]*inner[1],
		m[0]*inner[2] + m[2]*inner[3],
		m[1]*inner[2] + m[3]*inner[3],
		m[0]*inner[4] + m[2]*inner[5] + m[4],
		m[1]*inner[4] + m[3]*inner[5] + m[5],
	}
}

// inverse undoes m. A collapsed matrix (a node scaled to zero) has no
// inverse and yields the identity.
func (m affine) inverse() affine {
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	return affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform refreshes world transforms and alphas below n. A
// clean node is skipped unless an ancestor changed.
func updateWorldTransform(n *Node, parent affine, parentAlpha float64, parentChanged bool) {
	changed := n.transformDirty || parentChanged
	if changed {
		n.worldTransform = parent.compose(localAffine(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, changed)
	}
}

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale stretches the node. Swatch sprites use it as their size.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetRotation turns the node around its pivot, in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the local point that rotation and scale are applied around.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX, n.PivotY = px, py
	n.transformDirty = true
}

// SetAlpha sets the node's opacity. Children multiply it into their own.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty schedules a transform refresh after fields were written
// directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldToLocal maps a screen point into the node's space, as hit tests do.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return n.worldTransform.inverse().apply(wx, wy)
}

// LocalToWorld maps a point in the node's space onto the screen.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return n.worldTransform.apply(lx, ly)
}
