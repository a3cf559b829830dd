// Package request implements the DeliveryRequest aggregate: client-initiated,
// non-catalog delivery jobs that deliverers claim while pending and then carry
// through picked_up to delivered.
package request
