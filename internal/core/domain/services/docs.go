// Package services contains the stateless domain services of the marketplace.
//
// Services:
//   - Dispatcher: eligibility checks and binding of jobs to deliverers
//   - DeliveryFee, MinimumOrderValue, EstimateDelivery: pricing policy
//   - NearbyFinder: exact radius filter and ordering for nearby deliverers
//   - BreadcrumbBuilder: tracking fan-out for in-flight orders
//   - ProblemDetector: orders stuck in a status for too long
//
// Persistence-level guarantees (the atomic claim, the single active location) are enforced
// by the repositories; these services only decide.
package services
