// Package triangulate computes Delaunay triangulations of scattered 2D
// samples, the mesh the decision-boundary contour is interpolated on.
package triangulate

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerate is returned when the input has fewer than three distinct
// points or all of them are collinear.
var ErrDegenerate = errors.New("triangulate: need at least three distinct non-collinear points")

// duplicateEpsilon is the coordinate distance under which consecutive
// sweep points are treated as the same sample.
const duplicateEpsilon = 0x1p-52

// Point is a sample location.
type Point struct {
	X, Y float64
}

// Triangle holds three indices into the point slice passed to Delaunay.
type Triangle [3]int

// Delaunay triangulates points with a sweep-hull: points are added in
// order of distance from a seed triangle, each one fanned onto the visible
// part of the current convex hull and legalised by edge flips. The hull
// only ever grows, so the result always covers the convex hull of the
// input. Duplicate points are triangulated once.
func Delaunay(points []Point) ([]Triangle, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrDegenerate
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("triangulate: point %d is not finite: (%g, %g)", i, p.X, p.Y)
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if maxX == minX && maxY == minY {
		return nil, ErrDegenerate
	}

	s := newSweep(points)
	if !s.seed((minX+maxX)/2, (minY+maxY)/2) {
		return nil, ErrDegenerate
	}
	s.run()

	out := make([]Triangle, 0, len(s.triangles)/3)
	for i := 0; i+2 < len(s.triangles); i += 3 {
		out = append(out, Triangle{s.triangles[i], s.triangles[i+1], s.triangles[i+2]})
	}
	return out, nil
}

// sweep is the working state of one triangulation. triangles is flat,
// three vertex indices per triangle; halfedges[e] is the opposite half-edge
// of e in the neighbouring triangle, or -1 on the hull.
type sweep struct {
	points    []Point
	triangles []int
	halfedges []int

	hullPrev  []int
	hullNext  []int
	hullTri   []int
	hullHash  []int
	hullStart int
	hashSize  int

	ids    []int
	i0     int
	i1     int
	i2     int
	cx, cy float64

	stack []int
}

func newSweep(points []Point) *sweep {
	n := len(points)
	maxTriangles := max(2*n-5, 1)
	s := &sweep{
		points:    points,
		triangles: make([]int, 0, 3*maxTriangles),
		halfedges: make([]int, 0, 3*maxTriangles),
		hullPrev:  make([]int, n),
		hullNext:  make([]int, n),
		hullTri:   make([]int, n),
		hashSize:  int(math.Ceil(math.Sqrt(float64(n)))),
		ids:       make([]int, n),
	}
	s.hullHash = make([]int, s.hashSize)
	for i := range s.hullHash {
		s.hullHash[i] = -1
	}
	return s
}

// seed picks the starting triangle: the point nearest the bbox centre, its
// nearest neighbour, and the point forming the smallest circumcircle with
// them. It reports false when every point is collinear with the first two.
func (s *sweep) seed(bx, by float64) bool {
	pts := s.points
	s.i0, s.i1, s.i2 = -1, -1, -1

	minDist := math.Inf(1)
	for i, p := range pts {
		if d := dist2(bx, by, p.X, p.Y); d < minDist {
			s.i0, minDist = i, d
		}
	}
	p0 := pts[s.i0]

	minDist = math.Inf(1)
	for i, p := range pts {
		if i == s.i0 {
			continue
		}
		if d := dist2(p0.X, p0.Y, p.X, p.Y); d < minDist && d > 0 {
			s.i1, minDist = i, d
		}
	}
	if s.i1 < 0 {
		return false
	}
	p1 := pts[s.i1]

	minRadius := math.Inf(1)
	for i, p := range pts {
		if i == s.i0 || i == s.i1 {
			continue
		}
		// Collinear candidates give +Inf or NaN and never win.
		if r := circumradius2(p0, p1, p); r < minRadius {
			s.i2, minRadius = i, r
		}
	}
	if s.i2 < 0 {
		return false
	}

	if orient(p0, p1, pts[s.i2]) {
		s.i1, s.i2 = s.i2, s.i1
	}
	s.cx, s.cy = circumcenter(p0, pts[s.i1], pts[s.i2])

	dists := make([]float64, len(pts))
	for i, p := range pts {
		s.ids[i] = i
		dists[i] = dist2(p.X, p.Y, s.cx, s.cy)
	}
	sort.SliceStable(s.ids, func(a, b int) bool {
		return dists[s.ids[a]] < dists[s.ids[b]]
	})
	return true
}

func (s *sweep) run() {
	pts := s.points
	i0, i1, i2 := s.i0, s.i1, s.i2

	s.hullStart = i0
	s.hullNext[i0], s.hullPrev[i2] = i1, i1
	s.hullNext[i1], s.hullPrev[i0] = i2, i2
	s.hullNext[i2], s.hullPrev[i1] = i0, i0
	s.hullTri[i0], s.hullTri[i1], s.hullTri[i2] = 0, 1, 2
	s.hullHash[s.hashKey(pts[i0])] = i0
	s.hullHash[s.hashKey(pts[i1])] = i1
	s.hullHash[s.hashKey(pts[i2])] = i2
	s.addTriangle(i0, i1, i2, -1, -1, -1)

	var prev Point
	for k, i := range s.ids {
		p := pts[i]
		if k > 0 && math.Abs(p.X-prev.X) <= duplicateEpsilon && math.Abs(p.Y-prev.Y) <= duplicateEpsilon {
			continue
		}
		prev = p
		if i == i0 || i == i1 || i == i2 {
			continue
		}

		start := s.hullStart
		key := s.hashKey(p)
		for j := 0; j < s.hashSize; j++ {
			h := s.hullHash[(key+j)%s.hashSize]
			if h != -1 && h != s.hullNext[h] {
				start = h
				break
			}
		}
		start = s.hullPrev[start]

		// First hull edge visible from p; none means p is on or inside
		// the hull, which only happens for near-duplicates.
		e := start
		for !orient(p, pts[e], pts[s.hullNext[e]]) {
			e = s.hullNext[e]
			if e == start {
				e = -1
				break
			}
		}
		if e == -1 {
			continue
		}

		t := s.addTriangle(e, i, s.hullNext[e], -1, -1, s.hullTri[e])
		s.hullTri[i] = s.legalize(t + 2)
		s.hullTri[e] = t

		next := s.hullNext[e]
		for {
			q := s.hullNext[next]
			if !orient(p, pts[next], pts[q]) {
				break
			}
			t = s.addTriangle(next, i, q, s.hullTri[i], -1, s.hullTri[next])
			s.hullTri[i] = s.legalize(t + 2)
			s.hullNext[next] = next // removed from hull
			next = q
		}

		if e == start {
			for {
				q := s.hullPrev[e]
				if !orient(p, pts[q], pts[e]) {
					break
				}
				t = s.addTriangle(q, i, e, -1, s.hullTri[e], s.hullTri[q])
				s.legalize(t + 2)
				s.hullTri[q] = t
				s.hullNext[e] = e
				e = q
			}
		}

		s.hullStart = e
		s.hullPrev[i] = e
		s.hullNext[e] = i
		s.hullPrev[next] = i
		s.hullNext[i] = next

		s.hullHash[s.hashKey(p)] = i
		s.hullHash[s.hashKey(pts[e])] = e
	}
}

func (s *sweep) hashKey(p Point) int {
	return int(math.Floor(pseudoAngle(p.X-s.cx, p.Y-s.cy)*float64(s.hashSize))) % s.hashSize
}

// legalize flips edges from a outward until every affected pair of
// triangles satisfies the empty-circumcircle condition. It returns the
// half-edge that ends up opposite a's original origin.
func (s *sweep) legalize(a int) int {
	pts := s.points
	stack := s.stack[:0]
	var ar int

	for {
		b := s.halfedges[a]
		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b == -1 {
			if len(stack) == 0 {
				break
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := s.triangles[ar]
		pr := s.triangles[a]
		pl := s.triangles[al]
		p1 := s.triangles[bl]

		if !inCircle(pts[p0], pts[pr], pts[pl], pts[p1]) {
			if len(stack) == 0 {
				break
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
			continue
		}

		s.triangles[a] = p1
		s.triangles[b] = p0

		hbl := s.halfedges[bl]
		if hbl == -1 {
			// The flipped edge was on the hull; repoint its hull entry.
			e := s.hullStart
			for {
				if s.hullTri[e] == bl {
					s.hullTri[e] = a
					break
				}
				e = s.hullPrev[e]
				if e == s.hullStart {
					break
				}
			}
		}
		s.link(a, hbl)
		s.link(b, s.halfedges[ar])
		s.link(ar, bl)

		stack = append(stack, b0+(b+1)%3)
	}

	s.stack = stack
	return ar
}

func (s *sweep) link(a, b int) {
	s.halfedges[a] = b
	if b != -1 {
		s.halfedges[b] = a
	}
}

func (s *sweep) addTriangle(i0, i1, i2, a, b, c int) int {
	t := len(s.triangles)
	s.triangles = append(s.triangles, i0, i1, i2)
	s.halfedges = append(s.halfedges, -1, -1, -1)
	s.link(t, a)
	s.link(t+1, b)
	s.link(t+2, c)
	return t
}

// orient reports whether p, q, r turn left (counter-clockwise).
func orient(p, q, r Point) bool {
	return (q.Y-p.Y)*(r.X-q.X)-(q.X-p.X)*(r.Y-q.Y) < 0
}

// inCircle reports whether p lies strictly inside the circumcircle of the
// clockwise triangle a, b, c.
func inCircle(a, b, c, p Point) bool {
	dx, dy := a.X-p.X, a.Y-p.Y
	ex, ey := b.X-p.X, b.Y-p.Y
	fx, fy := c.X-p.X, c.Y-p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) < 0
}

// circumOffset is the circumcentre of a, b, c relative to a.
func circumOffset(a, b, c Point) (x, y float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	ex, ey := c.X-a.X, c.Y-a.Y
	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)
	return (ey*bl - dy*cl) * d, (dx*cl - ex*bl) * d
}

func circumradius2(a, b, c Point) float64 {
	x, y := circumOffset(a, b, c)
	return x*x + y*y
}

func circumcenter(a, b, c Point) (x, y float64) {
	ox, oy := circumOffset(a, b, c)
	return a.X + ox, a.Y + oy
}

// pseudoAngle maps a direction monotonically onto [0, 1).
func pseudoAngle(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy > 0 {
		return (3 - p) / 4
	}
	return (1 + p) / 4
}

func dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// signedArea is positive for counter-clockwise triangles.
func signedArea(verts []Point, v Triangle) float64 {
	a, b, c := verts[v[0]], verts[v[1]], verts[v[2]]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// Area returns the unsigned area of t over points.
func Area(points []Point, t Triangle) float64 {
	return math.Abs(signedArea(points, t))
}
