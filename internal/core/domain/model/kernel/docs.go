// Package kernel holds the shared value objects of the marketplace domain:
// UUID identifiers, WGS84 Locations, caller Roles and the great-circle
// geometry (Haversine distance, linear ETA, bounding boxes) that dispatch,
// tracking and nearby search are built on.
package kernel
