// Package geofence holds circular reference areas: store surroundings, delivery zones and restricted areas.
package geofence
