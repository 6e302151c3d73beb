// Package otp classifies decrypted payloads and derives time-based one-time codes.
//
// A payload is an OTP secret when it starts with "otpauth://". Such secrets
// are stored as the complete provisioning URI, so the period, digit count and
// algorithm the issuer chose are kept alongside the shared secret:
//
//	otpauth://totp/GitHub:alice?secret=JBSWY3DPEHPK3PXP&issuer=GitHub&period=30
//
// Enrollment files the URI under otp/<issuer>/<account>. The URI may come from
// the command line or from a QR code image decoded with gozxing.
package otp
