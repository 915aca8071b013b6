// Package geom is the planar geometry kernel shared by every triangulation
// algorithm in this module: orientation predicates, distance helpers,
// point-in-triangle containment, polygon centroids, and the monotone-chain
// convex hull.
//
// # What & Why
//
// Triangulation code lives and dies by a handful of predicates. Centralizing
// them keeps sign conventions consistent across algorithms:
//
//   - Cross(p, a, b) — twice the signed area of triangle pab; positive ⇒ a→b
//     turns counter-clockwise around p.
//   - Orientation(p, q, r) — the sign of Cross as −1/0/+1.
//   - Dist / DistSq — Euclidean distance and its square. DistSq is preferred
//     wherever only an ordering is needed (MST edge sort, nearest-hull search,
//     interior-point ordering): it is ordering-equivalent and skips the sqrt.
//   - PointInTriangle — boundary-inclusive containment via the three edge
//     cross products (no mixed strict signs).
//   - PolygonCentroid — standard area-weighted centroid of a simple polygon.
//   - ConvexHullIndices — Andrew's monotone chain over point indices, CCW,
//     strict turns only.
//
// # Conventions
//
// Points are github.com/golang/geo/r2 values (Point is a type alias), so the
// kernel composes with r2 vector arithmetic directly. Vertices are identified
// by index into an immutable point slice everywhere above this package; only
// the kernel touches coordinates.
//
// All predicates run in float64. Collinear results (Cross == 0) are reported
// faithfully; callers that must not act on ambiguous sign (edge-flip legality)
// resolve ties conservatively on their side.
//
// Degenerate inputs — zero-area polygons handed to PolygonCentroid, fewer than
// three points to the hull — are external preconditions, matching the module's
// stance that duplicate/collinear point sets are undefined behavior.
package geom
