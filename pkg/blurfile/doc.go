/*
Package blurfile provides a small container format for fast-blur obfuscated
payloads at rest: a fixed header carrying the shift mode and key salt,
followed by the transformed bytes.

Key material is derived from a passphrase with scrypt, so only the salt needs
to travel with the payload. As with the rest of this module, this is
obfuscation rather than encryption: there is no integrity checking, and
unsealing with the wrong passphrase silently yields wrong bytes instead of an
error. Callers that need tamper detection or confidentiality should use real
cryptography instead.
*/
package blurfile
