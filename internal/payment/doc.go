// Package payment bridges the internal payment contract to an external
// gateway whose calling convention differs.
//
// Gateway is a stand-in for the external provider; Adapter converts
// domain.PaymentMethod calls into gateway sends.
package payment
