// Package tube builds tube-shaped triangle meshes from polylines.
//
// A polyline of control points is subdivided into a denser centerline, a
// ring of vertices is placed around every centerline sample, and neighboring
// rings are stitched into triangles. The Renderer type wraps this with the
// change detection a host needs to rebuild only when the inputs change.
package tube
