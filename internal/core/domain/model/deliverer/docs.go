// Package deliverer contains the Deliverer aggregate: the vehicle, availability,
// approval and delivery counters that gate dispatch and location tracking.
//
// Domain concepts:
//   - Eligibility: online AND approved; required to claim jobs and to publish locations
//   - Availability: toggled by the deliverer; approval is toggled by an administrator
//   - Deliveries: counted exactly once per delivered order or delivery request
package deliverer
